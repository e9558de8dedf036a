package models

// Asset is a tracked piece of hardware. Tag is the immutable primary key; the
// collection holds at most one asset per tag.
type Asset struct {
	Tag    string `json:"tag"`
	Type   string `json:"type"`
	Model  string `json:"model"`
	User   string `json:"user"`
	Status string `json:"status"`
}

// AssetFields lists the visible asset attributes in their canonical order.
// The CSV export header and the search/sort field names derive from it.
var AssetFields = []string{"tag", "type", "model", "user", "status"}

// AssetPatch carries a partial update. Nil fields are left untouched on merge,
// matching the edit form's partial submissions.
type AssetPatch struct {
	Type   *string `json:"type,omitempty"`
	Model  *string `json:"model,omitempty"`
	User   *string `json:"user,omitempty"`
	Status *string `json:"status,omitempty"`
}

func (p AssetPatch) ApplyTo(a *Asset) {
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Model != nil {
		a.Model = *p.Model
	}
	if p.User != nil {
		a.User = *p.User
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}

// FieldValue returns the string form of the named attribute, or the empty
// string for an unknown field name.
func (a Asset) FieldValue(field string) string {
	switch field {
	case "tag":
		return a.Tag
	case "type":
		return a.Type
	case "model":
		return a.Model
	case "user":
		return a.User
	case "status":
		return a.Status
	default:
		return ""
	}
}
