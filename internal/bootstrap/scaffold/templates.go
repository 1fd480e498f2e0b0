package scaffold

// Exact file contents written over generator output. Generators don't
// know our compose networking, health UI, or image layout; these do.

const frontendViteConfig = `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

// https://vitejs.dev/config/
export default defineConfig({
  plugins: [react()],
  server: {
    host: '0.0.0.0',
    port: 5173,
    proxy: {
      '/api': {
        target: 'http://api:3001',
        changeOrigin: true,
        rewrite: (path) => path.replace(/^\/api/, ''),
      },
    },
  },
})
`

const frontendDockerfile = `FROM node:20-alpine

WORKDIR /app

COPY package*.json ./
RUN npm install

COPY . .

EXPOSE 5173

CMD ["npm", "run", "dev", "--", "--host", "0.0.0.0"]
`

const dockerignore = `node_modules
dist
.env
*.log
`

const frontendApp = `import { useEffect, useState } from 'react'
import './App.css'

const POLL_INTERVAL_MS = 5000

function App() {
  const [health, setHealth] = useState(null)

  useEffect(() => {
    let cancelled = false

    const poll = async () => {
      try {
        const res = await fetch('/api/health')
        const body = await res.json()
        if (!cancelled) setHealth(body)
      } catch {
        if (!cancelled) {
          setHealth({
            status: 'error',
            error: 'API unreachable',
            timestamp: new Date().toISOString(),
          })
        }
      }
    }

    poll()
    const timer = setInterval(poll, POLL_INTERVAL_MS)
    return () => {
      cancelled = true
      clearInterval(timer)
    }
  }, [])

  const statusClass = (status) => {
    switch (status) {
      case 'healthy':
        return 'status-healthy'
      case 'degraded':
        return 'status-degraded'
      case 'unhealthy':
      case 'error':
        return 'status-unhealthy'
      default:
        return 'status-unknown'
    }
  }

  return (
    <div className="app">
      <h1>stackpad</h1>
      {health === null ? (
        <p>Checking stack health…</p>
      ) : (
        <div className="health-card">
          <div className={'overall ' + statusClass(health.status)}>
            {health.status}
          </div>
          {health.services && (
            <ul>
              {Object.entries(health.services).map(([name, status]) => (
                <li key={name}>
                  <span className="service-name">{name}</span>
                  <span className={statusClass(status)}>{status}</span>
                </li>
              ))}
            </ul>
          )}
          {health.error && <p className="error">{health.error}</p>}
          <p className="timestamp">{health.timestamp}</p>
        </div>
      )}
    </div>
  )
}

export default App
`

const frontendAppCSS = `.app {
  max-width: 480px;
  margin: 4rem auto;
  font-family: system-ui, sans-serif;
}

.health-card {
  border: 1px solid #ddd;
  border-radius: 8px;
  padding: 1.5rem;
}

.overall {
  font-size: 1.5rem;
  font-weight: 600;
  text-transform: uppercase;
}

.health-card ul {
  list-style: none;
  padding: 0;
}

.health-card li {
  display: flex;
  justify-content: space-between;
  padding: 0.25rem 0;
}

.status-healthy {
  color: #2da44e;
}

.status-degraded {
  color: #bf8700;
}

.status-unhealthy {
  color: #cf222e;
}

.status-unknown {
  color: #6e7781;
}

.error {
  color: #cf222e;
}

.timestamp {
  color: #6e7781;
  font-size: 0.8rem;
}
`

const apiPackageJSON = `{
  "name": "api",
  "version": "0.1.0",
  "private": true,
  "main": "server.js",
  "scripts": {
    "start": "node server.js",
    "dev": "node --watch server.js"
  },
  "dependencies": {
    "express": "^4.19.2",
    "pg": "^8.11.5",
    "redis": "^4.6.13"
  }
}
`

const apiServer = `const express = require('express')
const { Pool } = require('pg')
const { createClient } = require('redis')

const app = express()
const port = process.env.PORT || 3001

const pool = new Pool({
  connectionString: process.env.DATABASE_URL,
})

const redis = createClient({ url: process.env.REDIS_URL })
redis.on('error', (err) => console.error('redis error', err))
redis.connect().catch(() => {})

app.get('/health', async (req, res) => {
  const services = { database: 'healthy', redis: 'healthy' }

  try {
    await pool.query('SELECT 1')
  } catch {
    services.database = 'unhealthy'
  }

  try {
    await redis.ping()
  } catch {
    services.redis = 'unhealthy'
  }

  const degraded = Object.values(services).some((s) => s !== 'healthy')
  res.json({
    status: degraded ? 'degraded' : 'healthy',
    timestamp: new Date().toISOString(),
    services,
  })
})

app.listen(port, '0.0.0.0', () => {
  console.log('api listening on ' + port)
})
`

const apiDockerfile = `FROM node:20-alpine

WORKDIR /app

COPY package*.json ./
RUN npm install

COPY . .

EXPOSE 3001

CMD ["npm", "run", "dev"]
`
