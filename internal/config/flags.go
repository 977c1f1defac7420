package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ApplyToFlags copies values resolved by v onto flags the user did not set
// explicitly, so config files and INITGEN_* variables act as flag defaults.
func ApplyToFlags(v *viper.Viper, sets ...*pflag.FlagSet) error {
	var result error
	for _, fs := range sets {
		if fs == nil {
			continue
		}
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Changed || !v.IsSet(f.Name) {
				return
			}
			val := v.GetString(f.Name)
			if val == "" || val == f.Value.String() {
				return
			}
			if err := fs.Set(f.Name, val); err != nil {
				result = multierror.Append(result, fmt.Errorf("%w %q: %v", ErrFlagBinding, f.Name, err))
			}
		})
	}
	return result
}
