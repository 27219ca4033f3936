// Package hclext reads lint configurations written in HCL.
//
// A schema declares which attributes and blocks a body may contain;
// Content extracts them and evaluates every attribute expression, and
// ToGo converts the resulting cty values into the plain Go shapes the
// loader validates (map[string]any, []any, string, bool, float64, nil).
//
// Key types:
//   - BodySchema: Defines expected attributes and blocks to extract
//   - BodyContent: Contains evaluated attributes and blocks
//   - Attribute: An evaluated HCL attribute with its source range
//   - Block: An HCL block with labels and nested content
package hclext

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// BodySchema represents the expected structure of an HCL body.
//
// Example:
//
//	schema := &hclext.BodySchema{
//	    Attributes: []hclext.AttributeSchema{
//	        {Name: "extends"},
//	        {Name: "rules"},
//	    },
//	    Blocks: []hclext.BlockSchema{
//	        {Type: "override", Body: overrideSchema},
//	    },
//	}
type BodySchema struct {
	// Attributes defines expected attributes.
	Attributes []AttributeSchema
	// Blocks defines expected nested blocks.
	Blocks []BlockSchema
}

// AttributeSchema represents an expected HCL attribute.
type AttributeSchema struct {
	// Name is the attribute name to match.
	Name string
	// Required indicates if the attribute must be present.
	Required bool
}

// BlockSchema represents an expected HCL block.
type BlockSchema struct {
	// Type is the block type to match (e.g., "override").
	Type string
	// LabelNames are the names for block labels.
	LabelNames []string
	// Body is the schema for the block's body content.
	Body *BodySchema
}

// BodyContent represents extracted content from an HCL body.
type BodyContent struct {
	// Attributes maps attribute names to their content.
	Attributes map[string]*Attribute
	// Blocks contains extracted block content in source order.
	Blocks []*Block
}

// Attribute represents an evaluated HCL attribute.
type Attribute struct {
	// Name is the attribute name.
	Name string
	// Value is the evaluated expression.
	Value cty.Value
	// Range is the source range of the entire attribute.
	Range hcl.Range
	// NameRange is the source range of just the attribute name.
	NameRange hcl.Range
}

// Block represents an extracted HCL block.
type Block struct {
	// Type is the block type.
	Type string
	// Labels are the block's label values.
	Labels []string
	// Body is the block's body content.
	Body *BodyContent
	// DefRange is the source range of the block definition.
	DefRange hcl.Range
}

// ToHCLBodySchema converts a BodySchema to an hcl.BodySchema.
func ToHCLBodySchema(schema *BodySchema) *hcl.BodySchema {
	if schema == nil {
		return nil
	}

	hclSchema := &hcl.BodySchema{
		Attributes: make([]hcl.AttributeSchema, len(schema.Attributes)),
		Blocks:     make([]hcl.BlockHeaderSchema, len(schema.Blocks)),
	}

	for i, attr := range schema.Attributes {
		hclSchema.Attributes[i] = hcl.AttributeSchema{
			Name:     attr.Name,
			Required: attr.Required,
		}
	}

	for i, block := range schema.Blocks {
		hclSchema.Blocks[i] = hcl.BlockHeaderSchema{
			Type:       block.Type,
			LabelNames: block.LabelNames,
		}
	}

	return hclSchema
}

// ParseFile parses HCL source and extracts its content. Files whose name
// ends in ".json" are read with the HCL JSON syntax.
func ParseFile(src []byte, filename string, schema *BodySchema) (*BodyContent, hcl.Diagnostics) {
	parser := hclparse.NewParser()

	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.HasSuffix(strings.ToLower(filename), ".json") {
		file, diags = parser.ParseJSON(src, filename)
	} else {
		file, diags = parser.ParseHCL(src, filename)
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return Content(file.Body, schema, nil)
}

// Content extracts the content described by schema from body, evaluating
// every attribute in ctx. Attributes and blocks not declared in the schema
// are errors.
func Content(body hcl.Body, schema *BodySchema, ctx *hcl.EvalContext) (*BodyContent, hcl.Diagnostics) {
	if body == nil || schema == nil {
		return &BodyContent{Attributes: map[string]*Attribute{}}, nil
	}

	content, diags := body.Content(ToHCLBodySchema(schema))
	if diags.HasErrors() {
		return nil, diags
	}

	result := &BodyContent{
		Attributes: make(map[string]*Attribute, len(content.Attributes)),
		Blocks:     make([]*Block, 0, len(content.Blocks)),
	}

	for name, attr := range content.Attributes {
		val, valDiags := attr.Expr.Value(ctx)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		result.Attributes[name] = &Attribute{
			Name:      attr.Name,
			Value:     val,
			Range:     attr.Range,
			NameRange: attr.NameRange,
		}
	}

	for _, block := range content.Blocks {
		var nested *BodySchema
		for _, bs := range schema.Blocks {
			if bs.Type == block.Type {
				nested = bs.Body
			}
		}
		blockContent, blockDiags := Content(block.Body, nested, ctx)
		diags = append(diags, blockDiags...)
		if blockDiags.HasErrors() {
			continue
		}
		result.Blocks = append(result.Blocks, &Block{
			Type:     block.Type,
			Labels:   block.Labels,
			Body:     blockContent,
			DefRange: block.DefRange,
		})
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return result, diags
}

// ToGo converts a cty value to plain Go values by way of its JSON
// encoding. Objects and maps become map[string]any, tuples, lists and
// sets become []any, numbers become float64.
func ToGo(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	data, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Values converts every attribute of the content to plain Go values.
func (c *BodyContent) Values() (map[string]any, hcl.Diagnostics) {
	out := make(map[string]any, len(c.Attributes))
	var diags hcl.Diagnostics
	for name, attr := range c.Attributes {
		v, err := ToGo(attr.Value)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid value",
				Detail:   fmt.Sprintf("The value of %q cannot be used: %s.", name, err),
				Subject:  attr.Range.Ptr(),
			})
			continue
		}
		out[name] = v
	}
	return out, diags
}
