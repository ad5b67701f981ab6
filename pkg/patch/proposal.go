// Package patch applies structural mutations to a knowledge graph:
// upserting proposed nodes and edges, merging duplicate nodes, and bulk
// deletion. Every operation returns a fresh graph value and never mutates
// its input.
//
// External proposals (from the AI oracle or an API caller) arrive as
// ProposedNode/ProposedEdge values and are validated per item before any
// canonical type is touched. An invalid item is skipped, not a batch
// failure.
package patch

import (
	"github.com/go-playground/validator"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

var validate = validator.New()

// ProposedNode is the untrusted intermediate representation of a node
// patch. Only ID is required; absent fields keep existing values on
// update and fall back to defaults on create.
type ProposedNode struct {
	ID          string           `json:"id" validate:"required"`
	Label       string           `json:"label,omitempty"`
	Type        common.NodeType  `json:"type,omitempty" validate:"omitempty,oneof=person organization event concept publication"`
	Year        int              `json:"year,omitempty"`
	Dates       string           `json:"dates,omitempty"`
	Description string           `json:"description,omitempty"`
	Importance  float64          `json:"importance,omitempty" validate:"gte=0,lte=1"`
	Region      string           `json:"region,omitempty"`
	Certainty   common.Certainty `json:"certainty,omitempty" validate:"omitempty,oneof=confirmed disputed alleged"`
	Sources     []string         `json:"sources,omitempty"`
}

// ProposedEdge is the untrusted intermediate representation of an edge
// patch. Oracle replies name the label field "relationship"; both keys
// are accepted.
type ProposedEdge struct {
	ID           string           `json:"id,omitempty"`
	Source       string           `json:"source" validate:"required"`
	Target       string           `json:"target" validate:"required"`
	Label        string           `json:"label,omitempty"`
	Relationship string           `json:"relationship,omitempty"`
	Dates        string           `json:"dates,omitempty"`
	Sign         common.EdgeSign  `json:"sign,omitempty" validate:"omitempty,oneof=positive negative"`
	Certainty    common.Certainty `json:"certainty,omitempty" validate:"omitempty,oneof=confirmed disputed alleged"`
}

// EdgeLabel resolves the effective relationship label, preferring the
// explicit relationship key over label, with "related" as the fallback.
func (p ProposedEdge) EdgeLabel() string {
	if p.Relationship != "" {
		return p.Relationship
	}
	if p.Label != "" {
		return p.Label
	}
	return "related"
}

// Valid reports whether a proposed node passes field validation.
func (p ProposedNode) Valid() bool {
	return validate.Struct(p) == nil
}

// Valid reports whether a proposed edge passes field validation.
func (p ProposedEdge) Valid() bool {
	return validate.Struct(p) == nil
}
