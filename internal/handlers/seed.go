package handlers

import (
	"net/http"

	"github.com/theramatch/theramatch-backend/internal/query"
	"github.com/theramatch/theramatch-backend/internal/schema"
)

var sampleTherapists = []map[string]interface{}{
	{
		"role":             "therapist",
		"name":             "Dr. Maya Patel",
		"email":            "maya.patel@example.com",
		"bio":              "Trauma-informed therapist focusing on mindfulness and CBT.",
		"specialties":      []interface{}{"Trauma", "CBT", "Mindfulness"},
		"modalities":       []interface{}{"CBT", "ACT"},
		"languages":        []interface{}{"English", "Hindi"},
		"location":         "Toronto, ON",
		"virtual":          true,
		"in_person":        true,
		"fee_min":          120,
		"fee_max":          180,
		"years_experience": 8,
	},
	{
		"role":             "therapist",
		"name":             "Jean-Luc Tremblay",
		"email":            "jeanluc.t@example.com",
		"bio":              "Francophone therapist specializing in couples and family systems.",
		"specialties":      []interface{}{"Couples", "Family", "Anxiety"},
		"modalities":       []interface{}{"EFT", "SFT"},
		"languages":        []interface{}{"French", "English"},
		"location":         "Montreal, QC",
		"virtual":          true,
		"in_person":        false,
		"fee_min":          110,
		"fee_max":          160,
		"years_experience": 12,
	},
	{
		"role":             "therapist",
		"name":             "Sofia Ramirez",
		"email":            "sofia.r@example.com",
		"bio":              "Bilingual therapist helping with stress, burnout, and life transitions.",
		"specialties":      []interface{}{"Stress", "Burnout", "Transitions"},
		"modalities":       []interface{}{"CBT", "Narrative"},
		"languages":        []interface{}{"Spanish", "English"},
		"location":         "Vancouver, BC",
		"virtual":          true,
		"in_person":        true,
		"fee_min":          100,
		"fee_max":          150,
		"years_experience": 6,
	},
}

// Seed inserts the sample therapist directory, skipping emails that already
// exist so repeated calls don't duplicate profiles.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext()
	defer cancel()

	inserted := []string{}
	for _, sample := range sampleTherapists {
		rec, err := h.registry.Validate(schema.KindUser, sample, schema.OneOf("role", "therapist"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "invalid sample data: "+err.Error())
			return
		}

		existing, err := h.store.FindOne(ctx, schema.KindUser,
			query.Eq{Field: "email", Value: rec["email"]})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}
		if existing != nil {
			continue
		}

		id, err := h.store.Insert(ctx, schema.KindUser, rec)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to seed sample data")
			return
		}
		inserted = append(inserted, id.Hex())
	}
	if len(inserted) > 0 {
		h.invalidateDirectory()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"inserted": inserted,
		"count":    len(inserted),
	})
}
