package model

import "time"

// Event 客戶端持有的活動快照，權威資料在遠端服務
type Event struct {
	ID                int           `json:"id" db:"id"`
	Title             string        `json:"title" db:"title"`
	Description       *string       `json:"description,omitempty" db:"description"`
	Category          Category      `json:"category" db:"category"`
	Location          *string       `json:"location,omitempty" db:"location"`
	StartDate         *time.Time    `json:"startDate,omitempty" db:"start_date"`
	EndDate           *time.Time    `json:"endDate,omitempty" db:"end_date"`
	MaxParticipants   *int          `json:"maxParticipants,omitempty" db:"max_participants"`
	Creator           Creator       `json:"creator" db:"-"`
	Participants      []Participant `json:"participants,omitempty" db:"-"`
	ParticipantsCount int           `json:"participantsCount" db:"participants_count"`
	IsParticipant     bool          `json:"isParticipant" db:"-"`
	CreatedAt         time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time     `json:"updatedAt" db:"updated_at"`
}

type Creator struct {
	ID   int    `json:"id" db:"creator_id"`
	Name string `json:"name" db:"creator_name"`
}

type Participant struct {
	ID       int       `json:"id" db:"user_id"`
	Name     string    `json:"name" db:"name"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}

// Clone 深拷貝，讓外部讀取快照時無法改到控制器內部狀態
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	out := *e
	if e.Description != nil {
		v := *e.Description
		out.Description = &v
	}
	if e.Location != nil {
		v := *e.Location
		out.Location = &v
	}
	if e.StartDate != nil {
		v := *e.StartDate
		out.StartDate = &v
	}
	if e.EndDate != nil {
		v := *e.EndDate
		out.EndDate = &v
	}
	if e.MaxParticipants != nil {
		v := *e.MaxParticipants
		out.MaxParticipants = &v
	}
	if e.Participants != nil {
		out.Participants = make([]Participant, len(e.Participants))
		copy(out.Participants, e.Participants)
	}
	return &out
}

// HasParticipant 檢查使用者是否在名單中
func (e *Event) HasParticipant(userID int) bool {
	for _, p := range e.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// IsOwner 由目前使用者與快照即時推導，不存回快照
func IsOwner(user *User, event *Event) bool {
	if user == nil || event == nil {
		return false
	}
	return user.ID == event.Creator.ID
}
