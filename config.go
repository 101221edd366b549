package hohmann

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// BodyCatalog holds user-defined bodies loaded from a configuration file,
// keyed by lowercase name. It supplements the built-in presets, e.g. for
// asteroids or moons the presets do not cover.
type BodyCatalog struct {
	bodies map[string]Body
}

// LoadBodyCatalog reads `conf.toml` from the provided directory and returns
// the bodies its [bodies] table defines. Each entry needs a strictly positive
// `gm` [m³/s²]; `radius` [m] is optional and omitting it means the body has no
// defined surface. An optional `name` overrides the display name.
//
//	[bodies.vesta]
//	gm = 1.7288e10
//	radius = 262700.0
func LoadBodyCatalog(confPath string) (*BodyCatalog, error) {
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(confPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("conf.toml not found in %s: %s", confPath, err)
	}
	catalog := &BodyCatalog{bodies: make(map[string]Body)}
	for key := range v.GetStringMap("bodies") {
		sub := v.Sub("bodies." + key)
		if sub == nil {
			return nil, fmt.Errorf("body %q: not a table", key)
		}
		name := sub.GetString("name")
		if name == "" {
			name = key
		}
		gm := sub.GetFloat64("gm")
		var (
			body Body
			err  error
		)
		if sub.IsSet("radius") {
			body, err = NewBodyWithRadius(name, gm, sub.GetFloat64("radius"))
		} else {
			body, err = NewBody(name, gm)
		}
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", key, err)
		}
		catalog.bodies[strings.ToLower(key)] = body
	}
	return catalog, nil
}

// Len returns the number of user-defined bodies.
func (c *BodyCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.bodies)
}

// Lookup returns the named body, checking the catalog first and falling back
// to the built-in presets. It is safe to call on a nil catalog.
func (c *BodyCatalog) Lookup(name string) (Body, error) {
	if c != nil {
		if body, found := c.bodies[strings.ToLower(name)]; found {
			return body, nil
		}
	}
	return BodyFromString(name)
}
