package casefile

import (
	"time"

	"github.com/google/uuid"

	"exclusion-diagnostic/internal/answers"
)

// Case is the aggregate root: one person's diagnostic, created against a
// tool snapshot and updated incrementally as the caseworker records
// answers.
type Case struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Title string    `json:"title" db:"title"`

	// Tool snapshot taken at creation time, so the case keeps rendering
	// consistently even if the tool is later edited or removed.
	ToolID    string `json:"toolId" db:"tool_id"`
	ToolName  string `json:"toolName" db:"tool_name"`
	ToolColor string `json:"toolColor" db:"tool_color"`

	Answers answers.Map `json:"answers" db:"answers"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
