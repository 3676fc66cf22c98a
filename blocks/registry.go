package blocks

import "swayzones/config"

// ProviderSpec describes how to enable and build a provider. A module may
// build several providers (one per city).
type ProviderSpec struct {
	Name   string
	Enable func(*config.Config) bool
	Build  func(*Env) []Provider
}

var (
	reg      = map[string]ProviderSpec{}
	regOrder []string
)

func init() {
	Register(ProviderSpec{
		Name:   "cities",
		Enable: func(c *config.Config) bool { return c.Modules.Cities.Enabled },
		Build:  buildCities,
	})
	Register(ProviderSpec{
		Name:   "slider",
		Enable: func(c *config.Config) bool { return c.Modules.Slider.Enabled },
		Build:  func(env *Env) []Provider { return []Provider{NewSliderProvider(env)} },
	})
	Register(ProviderSpec{
		Name:   "strip",
		Enable: func(c *config.Config) bool { return c.Modules.Strip.Enabled },
		Build:  func(env *Env) []Provider { return []Provider{NewStripProvider(env)} },
	})
}

// Register adds a provider spec if not already present. Subsequent registrations
// with the same name overwrite the spec but preserve original ordering.
func Register(spec ProviderSpec) {
	if _, exists := reg[spec.Name]; !exists {
		regOrder = append(regOrder, spec.Name)
	}
	reg[spec.Name] = spec
}

// BuildProviders returns provider instances in the order:
// 1. Order of module tables as specified in config file.
// 2. Remaining registered providers (those not present in config order) in registration order.
func BuildProviders(env *Env) []Provider {
	cfg := env.Config
	order := cfg.ModuleOrder()
	providers := []Provider{}
	appendIf := func(name string) {
		spec, ok := reg[name]
		if !ok {
			return // unknown name in config
		}
		if spec.Enable != nil && !spec.Enable(cfg) {
			return
		}
		providers = append(providers, spec.Build(env)...)
	}
	if len(order) > 0 { // explicit config file: only build those listed and enabled
		for _, n := range order {
			appendIf(n)
		}
		return providers
	}
	// No explicit file order (defaults case): use registration order
	for _, n := range regOrder {
		appendIf(n)
	}
	return providers
}
