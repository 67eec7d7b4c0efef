package checklists

import (
	"time"

	"github.com/Marat1506/hadj-admin/pkg/resource"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type Item struct {
	ID          int64      `json:"id"`
	UserID      *int64     `json:"userId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Category    string     `json:"category"`
	Priority    Priority   `json:"priority"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
	DueDate     *time.Time `json:"dueDate"`
	Order       *int64     `json:"order"`
	IsActive    *bool      `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (i Item) RecordID() int64 {
	return i.ID
}

// Overdue reports whether the item is pending past its due date.
func (i Item) Overdue(now time.Time) bool {
	return !i.IsCompleted && i.DueDate != nil && i.DueDate.Before(now)
}

type Draft struct {
	Title       string
	Category    string
	Priority    Priority
	UserID      resource.Field[int64]
	Description resource.Field[string]
	DueDate     resource.Field[time.Time]
	Order       resource.Field[int64]
	IsActive    resource.Field[bool]
}

func (d Draft) EncodeForm(f *resource.Form) {
	f.Add("title", d.Title)
	f.Add("category", d.Category)
	if d.Priority != "" {
		f.Add("priority", string(d.Priority))
	}
	resource.AddField(f, "userId", d.UserID)
	resource.AddField(f, "description", d.Description)
	resource.AddField(f, "dueDate", d.DueDate)
	resource.AddField(f, "order", d.Order)
	resource.AddField(f, "isActive", d.IsActive)
}

type Update struct {
	Title       resource.Field[string]
	Category    resource.Field[string]
	Priority    resource.Field[Priority]
	UserID      resource.Field[int64]
	Description resource.Field[string]
	IsCompleted resource.Field[bool]
	DueDate     resource.Field[time.Time]
	Order       resource.Field[int64]
	IsActive    resource.Field[bool]
}

func (u Update) EncodeForm(f *resource.Form) {
	resource.AddField(f, "title", u.Title)
	resource.AddField(f, "category", u.Category)
	resource.AddField(f, "priority", u.Priority)
	resource.AddField(f, "userId", u.UserID)
	resource.AddField(f, "description", u.Description)
	resource.AddField(f, "isCompleted", u.IsCompleted)
	resource.AddField(f, "dueDate", u.DueDate)
	resource.AddField(f, "order", u.Order)
	resource.AddField(f, "isActive", u.IsActive)
}

// Stats is the summary served by the stats endpoint.
type Stats struct {
	Total      int            `json:"total"`
	Completed  int            `json:"completed"`
	Pending    int            `json:"pending"`
	Overdue    int            `json:"overdue"`
	ByCategory map[string]int `json:"byCategory"`
	ByPriority map[string]int `json:"byPriority"`
}
