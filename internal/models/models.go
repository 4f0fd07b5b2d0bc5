package models

import "pharmacology-gateway/internal/upstream"

// Filter types for the list operations. Every field is optional; pointers
// distinguish "not supplied" from a zero value, so approved=false is still
// sent while an absent field produces no query parameter at all. The
// parameter spellings in the Params methods are fixed by the upstream
// service's contract and must not be changed.

// TargetFilter narrows a target listing.
// @Description Optional constraints for listing pharmacological targets.
type TargetFilter struct {
	Type       *string `json:"type,omitempty"`
	Name       *string `json:"name,omitempty"`
	GeneSymbol *string `json:"geneSymbol,omitempty"`
	ECNumber   *string `json:"ecNumber,omitempty"`
	Accession  *string `json:"accession,omitempty"`
	Database   *string `json:"database,omitempty"`
	Immuno     *bool   `json:"immuno,omitempty"`
	Malaria    *bool   `json:"malaria,omitempty"`
}

// Params maps the filter onto upstream query parameters.
func (f *TargetFilter) Params() upstream.Params {
	p := upstream.Params{}
	p.SetString("type", f.Type)
	p.SetString("name", f.Name)
	p.SetString("geneSymbol", f.GeneSymbol)
	p.SetString("ecNumber", f.ECNumber)
	p.SetString("accession", f.Accession)
	p.SetString("database", f.Database)
	p.SetBool("immuno", f.Immuno)
	p.SetBool("malaria", f.Malaria)
	return p
}

// LigandFilter narrows a ligand listing.
// @Description Optional constraints for listing ligands.
type LigandFilter struct {
	Type          *string  `json:"type,omitempty"`
	Name          *string  `json:"name,omitempty"`
	GeneSymbol    *string  `json:"geneSymbol,omitempty"`
	InChIKey      *string  `json:"inchikey,omitempty"`
	Approved      *bool    `json:"approved,omitempty"`
	Immuno        *bool    `json:"immuno,omitempty"`
	Malaria       *bool    `json:"malaria,omitempty"`
	Antibacterial *bool    `json:"antibacterial,omitempty"`
	MolWeightGt   *float64 `json:"molWeightGt,omitempty"`
	MolWeightLt   *float64 `json:"molWeightLt,omitempty"`
}

// Params maps the filter onto upstream query parameters. The two molecular
// weight bounds are independent parameters upstream, not a single range.
func (f *LigandFilter) Params() upstream.Params {
	p := upstream.Params{}
	p.SetString("type", f.Type)
	p.SetString("name", f.Name)
	p.SetString("geneSymbol", f.GeneSymbol)
	p.SetString("inchikey", f.InChIKey)
	p.SetBool("approved", f.Approved)
	p.SetBool("immuno", f.Immuno)
	p.SetBool("malaria", f.Malaria)
	p.SetBool("antibacterial", f.Antibacterial)
	p.SetFloat("molWeightGt", f.MolWeightGt)
	p.SetFloat("molWeightLt", f.MolWeightLt)
	return p
}

// InteractionFilter narrows an interaction listing.
// @Description Optional constraints for listing target-ligand interactions.
type InteractionFilter struct {
	TargetID      *int    `json:"targetId,omitempty"`
	LigandID      *int    `json:"ligandId,omitempty"`
	Type          *string `json:"type,omitempty"`
	AffinityType  *string `json:"affinityType,omitempty"`
	Species       *string `json:"species,omitempty"`
	Approved      *bool   `json:"approved,omitempty"`
	PrimaryTarget *bool   `json:"primaryTarget,omitempty"`
}

// Params maps the filter onto upstream query parameters.
func (f *InteractionFilter) Params() upstream.Params {
	p := upstream.Params{}
	p.SetInt("targetId", f.TargetID)
	p.SetInt("ligandId", f.LigandID)
	p.SetString("type", f.Type)
	p.SetString("affinityType", f.AffinityType)
	p.SetString("species", f.Species)
	p.SetBool("approved", f.Approved)
	p.SetBool("primaryTarget", f.PrimaryTarget)
	return p
}

// SubresourceFilter narrows a nested interaction listing under a single
// target or ligand. Bound from query parameters rather than a JSON body.
type SubresourceFilter struct {
	Species  *string `form:"species" json:"species,omitempty"`
	Type     *string `form:"type" json:"type,omitempty"`
	Approved *bool   `form:"approved" json:"approved,omitempty"`
}

// Params maps the filter onto upstream query parameters.
func (f *SubresourceFilter) Params() upstream.Params {
	p := upstream.Params{}
	p.SetString("species", f.Species)
	p.SetString("type", f.Type)
	p.SetBool("approved", f.Approved)
	return p
}

// ExactStructureRequest is the payload for an exact-structure ligand search.
type ExactStructureRequest struct {
	SMILES string `json:"smiles" binding:"required"`
}

// Params maps the search onto upstream query parameters.
func (r *ExactStructureRequest) Params() upstream.Params {
	return upstream.Params{"smiles": r.SMILES}
}

// File-sink request payloads. Each embeds the matching filter and adds the
// destination path the decoded JSON should be written to.

// TargetFileRequest asks for a target listing persisted to a file.
type TargetFileRequest struct {
	TargetFilter
	FilePath string `json:"filePath" binding:"required"`
}

// LigandFileRequest asks for a ligand listing persisted to a file.
type LigandFileRequest struct {
	LigandFilter
	FilePath string `json:"filePath" binding:"required"`
}

// InteractionFileRequest asks for a nested interaction listing persisted to a file.
type InteractionFileRequest struct {
	SubresourceFilter
	FilePath string `json:"filePath" binding:"required"`
}

// FileResponse confirms a completed file-sink call. Only the path comes
// back; the payload itself stays on disk.
type FileResponse struct {
	FilePath string `json:"filePath"`
}
