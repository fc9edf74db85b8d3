package get_branch_feedback

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/journal"
)

const msgBranchNotFound = "филиал не найден"

// BranchFeedbackResponse отзывы филиала и их сводка
type BranchFeedbackResponse struct {
	BranchKey     string                           `json:"branchKey"`
	Entries       []handlers.FeedbackEntryResponse `json:"entries"`
	ReviewCount   int                              `json:"reviewCount"`
	AverageRating float64                          `json:"averageRating"`
}

type Handler struct {
	journal JournalService
	logger  Logger
}

func NewHandler(journal JournalService, logger Logger) *Handler {
	return &Handler{
		journal: journal,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchKey}/feedback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchKey := mux.Vars(r)["branchKey"]

	entries, err := h.journal.FeedbackFor(r.Context(), branchKey)
	if err != nil {
		if errors.Is(err, journal.ErrBranchNotFound) {
			h.logger.Warn("GET /branches/{key}/feedback - Branch not found: branch=%s", branchKey)
			handlers.RespondNotFound(w, msgBranchNotFound)
			return
		}
		h.logger.Error("GET /branches/{key}/feedback - Failed to get feedback: branch=%s, error=%v", branchKey, err)
		handlers.RespondInternalError(w)
		return
	}

	summary := journal.Summarize(branchKey, entries)
	h.logger.Info("GET /branches/{key}/feedback - Feedback retrieved: branch=%s, count=%d", branchKey, summary.Count)
	handlers.RespondJSON(w, http.StatusOK, BranchFeedbackResponse{
		BranchKey:     branchKey,
		Entries:       handlers.FromFeedbackEntries(entries),
		ReviewCount:   summary.Count,
		AverageRating: summary.AverageRating,
	})
}
