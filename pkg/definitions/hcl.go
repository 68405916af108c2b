package definitions

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/kryptnostic/loom-api-go/pkg/models"
)

// definitionsSchema accepts one labelled block per registered kind.
func definitionsSchema() *hcl.BodySchema {
	schema := &hcl.BodySchema{}
	for _, kind := range models.Kinds() {
		schema.Blocks = append(schema.Blocks, hcl.BlockHeaderSchema{
			Type:       kind,
			LabelNames: []string{"name"},
		})
	}
	return schema
}

func decodeHCL(filename string, src []byte) ([]Definition, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	content, diags := file.Body.Content(definitionsSchema())
	if diags.HasErrors() {
		return nil, diags
	}

	defs := make([]Definition, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}

		fields := make(map[string]interface{}, len(attrs))
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, diags
			}
			goVal, err := ctyToGo(val)
			if err != nil {
				return nil, fmt.Errorf("%s: attribute %q: %w", attr.Range.String(), name, err)
			}
			fields[name] = goVal
		}

		defs = append(defs, Definition{
			Kind:   block.Type,
			Name:   block.Labels[0],
			Source: block.DefRange.String(),
			Fields: fields,
		})
	}
	return defs, nil
}

// ctyToGo converts an evaluated HCL value into the loosely typed shapes the
// model builders coerce from: string, bool, int64/float64, []interface{}
// and map[string]interface{}.
func ctyToGo(v cty.Value) (interface{}, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	t := v.Type()
	switch {
	case t.Equals(cty.String):
		return v.AsString(), nil
	case t.Equals(cty.Bool):
		return v.True(), nil
	case t.Equals(cty.Number):
		bf := v.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil
	case t.IsListType(), t.IsSetType(), t.IsTupleType():
		out := make([]interface{}, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			gv, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	case t.IsMapType(), t.IsObjectType():
		out := make(map[string]interface{}, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			gv, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = gv
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported value type %s", t.FriendlyName())
}
