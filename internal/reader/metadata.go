package reader

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-frontmark/pkg/interfaces"
	"github.com/goliatone/go-frontmark/pkg/metadata"
)

// LoadMetadata parses a metadata block into an ordered mapping. Pairs are
// inserted in encounter order, nested mappings included. Custom tags resolve
// through the supplied dispatch table; the renderer is the per-document
// engine shared with the body. An empty block yields an empty mapping
// without invoking the parser; a root value that is not a mapping yields an
// empty mapping; malformed YAML is fatal.
func LoadMetadata(block string, handlers map[string]interfaces.TagHandler, renderer interfaces.Renderer) (*metadata.Mapping, error) {
	if strings.TrimSpace(block) == "" {
		return metadata.New(), nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, wrapMetadataError(err)
	}

	root := documentRoot(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		return metadata.New(), nil
	}

	decoder := &nodeDecoder{handlers: handlers, renderer: renderer}
	return decoder.mapping(root)
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	return doc.Content[0]
}

type nodeDecoder struct {
	handlers map[string]interfaces.TagHandler
	renderer interfaces.Renderer
}

func (d *nodeDecoder) mapping(node *yaml.Node) (*metadata.Mapping, error) {
	out := metadata.New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, err := d.key(node.Content[i])
		if err != nil {
			return nil, err
		}
		value, err := d.value(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		out.Set(key, value)
	}
	return out, nil
}

func (d *nodeDecoder) key(node *yaml.Node) (string, error) {
	if node.Kind == yaml.ScalarNode {
		return node.Value, nil
	}

	var decoded any
	if err := node.Decode(&decoded); err != nil {
		return "", wrapMetadataError(err)
	}
	return fmt.Sprint(decoded), nil
}

func (d *nodeDecoder) value(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return d.value(node.Alias)
	}

	if handler, ok := d.handlers[normalizeTag(node.Tag)]; ok {
		value, err := handler(d.renderer, node)
		if err != nil {
			return nil, wrapRenderError(err)
		}
		return value, nil
	}

	switch node.Kind {
	case yaml.MappingNode:
		return d.mapping(node)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := d.value(child)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil
	default:
		// A custom tag without a registered handler cannot be constructed.
		if isCustomTag(node.Tag) {
			return nil, wrapMetadataError(fmt.Errorf("no handler registered for tag %s", node.Tag))
		}
		var decoded any
		if err := node.Decode(&decoded); err != nil {
			return nil, wrapMetadataError(err)
		}
		return decoded, nil
	}
}

func isCustomTag(tag string) bool {
	if tag == "" || tag == "!" {
		return false
	}
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}
