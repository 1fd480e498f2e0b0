package scaffold

import (
	"github.com/stackpad-dev/stackpad/core/stack"
)

// Descriptors returns the fixed set of scaffoldable components, in the
// order they are ensured. The generator commands are pinned so repeated
// runs produce the same skeletons.
func Descriptors() []stack.Descriptor {
	return []stack.Descriptor{
		{
			Name:   "frontend",
			Dir:    "frontend",
			Marker: "frontend/package.json",
			GeneratorArgv: []string{
				"npm", "create", "vite@5", "frontend", "--", "--template", "react",
			},
			GeneratorDir: ".",
			Overrides: []stack.FileOverride{
				{Path: "frontend/vite.config.js", Content: frontendViteConfig},
				{Path: "frontend/Dockerfile", Content: frontendDockerfile},
				{Path: "frontend/.dockerignore", Content: dockerignore},
				{Path: "frontend/src/App.jsx", Content: frontendApp},
				{Path: "frontend/src/App.css", Content: frontendAppCSS},
			},
		},
		{
			Name:   "api",
			Dir:    "api",
			Marker: "api/package.json",
			GeneratorArgv: []string{
				"npx", "--yes", "express-generator", "--no-view", "api",
			},
			GeneratorDir: ".",
			Overrides: []stack.FileOverride{
				{Path: "api/package.json", Content: apiPackageJSON},
				{Path: "api/server.js", Content: apiServer},
				{Path: "api/Dockerfile", Content: apiDockerfile},
				{Path: "api/.dockerignore", Content: dockerignore},
			},
		},
	}
}
