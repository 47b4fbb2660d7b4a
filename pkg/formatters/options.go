package formatters

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/nelyj/command-line-reporter/pkg/errors"
)

// Options is the loosely-typed option map accepted by the public rendering
// surface. Each operation decodes it into a typed, default-filled config
// struct; unknown keys and non-coercible values are rejected, never ignored.
type Options map[string]interface{}

// Decode decodes opts into the config struct pointed to by out. Fields
// absent from opts keep whatever defaults out already carries. Unknown
// keys fail with ErrInvalidArgument, as do values that cannot be coerced
// to the field type (e.g. spacing: "lots").
func Decode(opts Options, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "report",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "building options decoder")
	}

	if err := decoder.Decode(map[string]interface{}(opts)); err != nil {
		return errors.Wrap(err, errors.ErrInvalidArgument, "invalid options")
	}

	return nil
}
