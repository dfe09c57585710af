package argb

import "gopkg.in/yaml.v3"

// MarshalYAML implements [yaml.Marshaler], emitting the canonical
// "#aarrggbb" form.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] via [Parse]. Hex values
// must be quoted in YAML documents since '#' starts a comment.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}
