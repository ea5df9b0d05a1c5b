package reader

import (
	"strings"

	"github.com/goliatone/go-frontmark/pkg/interfaces"
	"github.com/goliatone/go-frontmark/pkg/metadata"
)

// ProcessFields lowercases metadata keys and routes formatted field values
// through the renderer before applying the host hook. Source order is
// preserved; a key appearing twice under different casing keeps its first
// position and the later value.
func ProcessFields(raw *metadata.Mapping, formatted map[string]struct{}, renderer interfaces.Renderer, hook interfaces.FieldHook) (*metadata.Mapping, error) {
	if hook == nil {
		hook = identityHook
	}

	out := metadata.New()
	for _, pair := range raw.Pairs() {
		name := strings.ToLower(pair.Key)
		value := pair.Value

		if _, ok := formatted[name]; ok {
			// The renderer only accepts text; non-string values named as
			// formatted pass through unrendered.
			if text, isString := value.(string); isString {
				rendered, err := renderer.Render(text)
				if err != nil {
					return nil, wrapRenderError(err)
				}
				value = strings.TrimSpace(rendered)
			}
		}

		out.Set(name, hook(name, value))
	}
	return out, nil
}

func identityHook(_ string, value any) any {
	return value
}
