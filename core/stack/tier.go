package stack

// Tier is a startup-ordering group of services. Every Infra service
// must be observed ready before any App service is started; the
// orchestrator may parallelize within a tier but never across tiers.
type Tier int

const (
	TierInfra Tier = iota
	TierApp
)

func (t Tier) String() string {
	switch t {
	case TierInfra:
		return "infra"
	case TierApp:
		return "app"
	default:
		return "invalid"
	}
}

// Service names match the compose service definitions.
var (
	InfraServices = []string{"postgres", "redis"}
	AppServices   = []string{"api", "frontend"}
)

// Services returns the ordered service names for the tier.
func (t Tier) Services() []string {
	switch t {
	case TierInfra:
		return InfraServices
	case TierApp:
		return AppServices
	default:
		return nil
	}
}

// AllServices returns every service across both tiers, infra first.
func AllServices() []string {
	all := make([]string, 0, len(InfraServices)+len(AppServices))
	all = append(all, InfraServices...)
	all = append(all, AppServices...)
	return all
}
