package models

import "time"

// User is the profile mirror stored in Firestore alongside the Firebase Auth
// record. The Firebase Auth UID is the document ID.
type User struct {
	ID          string    `json:"uid" firestore:"-"`
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"displayName,omitempty" firestore:"displayName"`
	PhotoURL    string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// UserProfile merges the identity-provider record with the mirror document.
// It is the response shape of GET /api/auth/profile/:uid.
type UserProfile struct {
	UID           string    `json:"uid"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"displayName"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProfileMirrorEntry is an outbox record for a profile mirror write that
// failed during signup. A scheduled worker retries pending entries.
type ProfileMirrorEntry struct {
	ID          string    `json:"id" firestore:"-"`
	UID         string    `json:"uid" firestore:"uid"`
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"displayName" firestore:"displayName"`
	Status      string    `json:"status" firestore:"status"` // "pending" | "done" | "failed"
	Attempts    int       `json:"attempts" firestore:"attempts"`
	LastError   string    `json:"lastError,omitempty" firestore:"lastError,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Outbox entry statuses.
const (
	MirrorStatusPending = "pending"
	MirrorStatusDone    = "done"
	MirrorStatusFailed  = "failed"
)
