package hexview

import (
	"bytes"
	"errors"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/hexview/codepage"
	"github.com/unkn0wn-root/hexview/internal/errdef"
	"github.com/unkn0wn-root/hexview/internal/settings"
)

type ConfigFormat string

const (
	ConfigTOML ConfigFormat = "toml"
	ConfigYAML ConfigFormat = "yaml"
)

// EnvPrefix marks environment variables read by SettingsFromEnv.
const EnvPrefix = "HEXVIEW_"

// Options is the serialized form of a view configuration. Unset fields keep
// whatever the builder already has.
type Options struct {
	RowWidth      *int    `toml:"row_width,omitempty" yaml:"row_width,omitempty" json:"row_width,omitempty"`
	AddressOffset *uint64 `toml:"address_offset,omitempty" yaml:"address_offset,omitempty" json:"address_offset,omitempty"`
	Codepage      string  `toml:"codepage,omitempty" yaml:"codepage,omitempty" json:"codepage,omitempty"`
}

// ParseOptions decodes options from a TOML or YAML document. Unknown keys are
// rejected.
func ParseOptions(data []byte, format ConfigFormat) (Options, error) {
	var opts Options
	switch ConfigFormat(strings.ToLower(string(format))) {
	case ConfigTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil {
			return Options{}, errdef.Wrap(errdef.CodeConfig, err, "decode toml options")
		}
	case ConfigYAML, "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
			return Options{}, errdef.Wrap(errdef.CodeConfig, err, "decode yaml options")
		}
	default:
		return Options{}, errdef.New(errdef.CodeConfig, "unsupported options format %q", format)
	}
	return opts, nil
}

// Apply copies the populated fields onto b. On error b is returned as is.
func (o Options) Apply(b Builder) (Builder, error) {
	next := b
	if o.RowWidth != nil {
		next = next.RowWidth(*o.RowWidth)
	}
	if o.AddressOffset != nil {
		next = next.AddressOffset(*o.AddressOffset)
	}
	if strings.TrimSpace(o.Codepage) != "" {
		cp, err := lookupCodepage(o.Codepage)
		if err != nil {
			return b, err
		}
		next = next.Codepage(cp)
	}
	return next, nil
}

// ApplySettings applies string settings such as those collected by
// SettingsFromEnv. Scopes are merged first and later scopes win, so
//
//	ApplySettings(b, SettingsFromEnv(os.Environ()), overrides)
//
// lets explicit overrides beat the environment. Recognized keys are row_width
// (or width), address_offset (or offset, decimal or 0x hex) and codepage.
// Keys it does not recognize are returned.
func ApplySettings(b Builder, scopes ...map[string]string) (Builder, map[string]string, error) {
	next := b
	a := settings.New(
		settings.IntHandler(func(n int) { next = next.RowWidth(n) }, "row_width", "width"),
		settings.UintHandler(func(n uint64) { next = next.AddressOffset(n) }, "address_offset", "offset"),
		settings.StringHandler(func(name string) error {
			cp, err := lookupCodepage(name)
			if err != nil {
				return err
			}
			next = next.Codepage(cp)
			return nil
		}, "codepage"),
	)
	left, err := a.ApplyAll(settings.Merge(scopes...))
	if err != nil {
		return b, nil, err
	}
	return next, left, nil
}

// SettingsFromEnv picks HEXVIEW_* entries out of an os.Environ style list.
func SettingsFromEnv(environ []string) map[string]string {
	return settings.FromEnv(environ, EnvPrefix)
}

func lookupCodepage(name string) (*codepage.Codepage, error) {
	cp, err := codepage.Lookup(name)
	if err != nil {
		return nil, err
	}
	if requested := strings.ToLower(strings.TrimSpace(name)); requested != cp.Name() {
		log().WithFields(logrus.Fields{
			"requested": requested,
			"codepage":  cp.Name(),
		}).Debug("hexview: codepage resolved through alias")
	}
	return cp, nil
}
