package entity

import "time"

// Conversation pairs two profiles for direct messaging. The pair is unordered:
// at most one conversation exists for a given pair regardless of which side
// initiated it. UpdatedAt doubles as the last-activity timestamp and is bumped
// on every new message.
type Conversation struct {
	ID           string    `json:"id" firestore:"id"`
	ParticipantA string    `json:"participant_a" firestore:"participantA"`
	ParticipantB string    `json:"participant_b" firestore:"participantB"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}

// HasParticipant reports whether the profile is one of the two participants.
func (c *Conversation) HasParticipant(profileID string) bool {
	return c.ParticipantA == profileID || c.ParticipantB == profileID
}

// OtherParticipant returns the participant that is not the viewer.
func (c *Conversation) OtherParticipant(viewerID string) string {
	if c.ParticipantA == viewerID {
		return c.ParticipantB
	}
	return c.ParticipantA
}
