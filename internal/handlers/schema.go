package handlers

import (
	"net/http"

	"github.com/theramatch/theramatch-backend/internal/schema"
)

type fieldInfo struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Required bool        `json:"required"`
	Default  interface{} `json:"default,omitempty"`
	Min      *int        `json:"min,omitempty"`
	Max      *int        `json:"max,omitempty"`
	Enum     []string    `json:"enum,omitempty"`
}

type schemaInfo struct {
	Name   string      `json:"name"`
	Fields []fieldInfo `json:"fields"`
}

// GetSchemas lists every registered entity schema, for viewer/tools.
func (h *Handler) GetSchemas(w http.ResponseWriter, r *http.Request) {
	schemas := h.registry.All()
	out := make([]schemaInfo, 0, len(schemas))
	for _, s := range schemas {
		info := schemaInfo{Name: s.Kind, Fields: make([]fieldInfo, 0, len(s.Fields))}
		for _, f := range s.Fields {
			info.Fields = append(info.Fields, fieldInfo{
				Name:     f.Name,
				Type:     f.Type.String(),
				Required: !f.Optional && f.Default == nil && f.Type != schema.StringList,
				Default:  f.Default,
				Min:      f.Min,
				Max:      f.Max,
				Enum:     f.Enum,
			})
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}
