package requests

const (
	SelectionOpToggle      = "toggle"
	SelectionOpSelectAll   = "select_all"
	SelectionOpDeselectAll = "deselect_all"
	SelectionOpSetText     = "set_text"
)

// UpdateSelectionRequest mutates the per-view selection state of one
// document. toggle flips a single structured resource; select_all and
// deselect_all act on every resolved resource whose type is listed;
// set_text opts a narrative section in or out.
type UpdateSelectionRequest struct {
	Op            string   `json:"op" validate:"required,oneof=toggle select_all deselect_all set_text"`
	ResourceID    string   `json:"resource_id,omitempty"`
	ResourceTypes []string `json:"resource_types,omitempty"`
	SectionCode   string   `json:"section_code,omitempty"`
	Selected      bool     `json:"selected,omitempty"`
}
