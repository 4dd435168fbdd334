package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"innovest/internal/domain/entity"
	"innovest/internal/domain/repository"
	"innovest/pkg/errors"
)

// fakeConversationRepo is an in-memory ConversationRepository. Error fields
// make individual operations fail; listMessagesGate, when set, blocks
// ListMessages until the channel is closed.
type fakeConversationRepo struct {
	mu            sync.Mutex
	conversations map[string]*entity.Conversation
	messages      map[string][]*entity.Message

	listErr          error
	lastMessageErr   error
	countErr         error
	listMessagesErr  error
	insertCalls      int
	listMessageCalls int

	listMessagesGate chan struct{}
}

var _ repository.ConversationRepository = (*fakeConversationRepo)(nil)

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{
		conversations: make(map[string]*entity.Conversation),
		messages:      make(map[string][]*entity.Message),
	}
}

func (f *fakeConversationRepo) ListForProfile(ctx context.Context, profileID string) ([]*entity.Conversation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Conversation
	for _, conv := range f.conversations {
		if conv.HasParticipant(profileID) {
			out = append(out, conv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (f *fakeConversationRepo) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	conv, ok := f.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation not found", nil)
	}
	return conv, nil
}

func (f *fakeConversationRepo) FindBetween(ctx context.Context, idA, idB string) (*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, conv := range f.conversations {
		if (conv.ParticipantA == idA && conv.ParticipantB == idB) ||
			(conv.ParticipantA == idB && conv.ParticipantB == idA) {
			return conv, nil
		}
	}
	return nil, nil
}

func (f *fakeConversationRepo) Insert(ctx context.Context, idA, idB string) (*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	conv := &entity.Conversation{
		ID:           uuid.New().String(),
		ParticipantA: idA,
		ParticipantB: idB,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.conversations[conv.ID] = conv
	return conv, nil
}

func (f *fakeConversationRepo) Touch(ctx context.Context, conversationID string, ts time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	conv, ok := f.conversations[conversationID]
	if !ok {
		return errors.NotFound("Conversation not found", nil)
	}
	conv.UpdatedAt = ts
	return nil
}

func (f *fakeConversationRepo) LastMessage(ctx context.Context, conversationID string) (*entity.Message, error) {
	if f.lastMessageErr != nil {
		return nil, f.lastMessageErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	msgs := f.messages[conversationID]
	if len(msgs) == 0 {
		return nil, nil
	}
	return msgs[len(msgs)-1], nil
}

func (f *fakeConversationRepo) CountUnread(ctx context.Context, conversationID, viewerID string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, msg := range f.messages[conversationID] {
		if msg.SenderID != viewerID && msg.ReadAt == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeConversationRepo) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	if f.listMessagesGate != nil {
		<-f.listMessagesGate
	}
	if f.listMessagesErr != nil {
		return nil, f.listMessagesErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.listMessageCalls++
	msgs := f.messages[conversationID]
	out := make([]*entity.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (f *fakeConversationRepo) InsertMessage(ctx context.Context, message *entity.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.insertCalls++
	f.messages[message.ConversationID] = append(f.messages[message.ConversationID], message)
	return nil
}

func (f *fakeConversationRepo) MarkRead(ctx context.Context, conversationID, viewerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	for _, msg := range f.messages[conversationID] {
		if msg.SenderID != viewerID && msg.ReadAt == nil {
			ts := now
			msg.ReadAt = &ts
		}
	}
	return nil
}

type fakeProfileRepo struct {
	mu        sync.Mutex
	profiles  map[string]*entity.Profile
	prefs     map[string]*entity.InvestorPreferences
	companies map[string]*entity.FounderCompany

	getErr error
}

var _ repository.ProfileRepository = (*fakeProfileRepo)(nil)

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles:  make(map[string]*entity.Profile),
		prefs:     make(map[string]*entity.InvestorPreferences),
		companies: make(map[string]*entity.FounderCompany),
	}
}

func (f *fakeProfileRepo) add(id, fullName, role string) *entity.Profile {
	profile := &entity.Profile{
		ID:       id,
		Email:    id + "@example.com",
		FullName: fullName,
		Role:     role,
	}
	f.mu.Lock()
	f.profiles[id] = profile
	f.mu.Unlock()
	return profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	profile, ok := f.profiles[id]
	if !ok {
		return nil, errors.NotFound("Profile not found", nil)
	}
	return profile, nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, profile := range f.profiles {
		if profile.Email == email {
			return profile, nil
		}
	}
	return nil, errors.NotFound("Profile not found", nil)
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) ListByRole(ctx context.Context, role string) ([]*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Profile
	for _, profile := range f.profiles {
		if profile.Role == role {
			out = append(out, profile)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) SaveInvestorPreferences(ctx context.Context, prefs *entity.InvestorPreferences) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefs[prefs.ProfileID] = prefs
	return nil
}

func (f *fakeProfileRepo) GetInvestorPreferences(ctx context.Context, profileID string) (*entity.InvestorPreferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prefs, ok := f.prefs[profileID]
	if !ok {
		return nil, errors.NotFound("Investor preferences not found", nil)
	}
	return prefs, nil
}

func (f *fakeProfileRepo) ListInvestorPreferences(ctx context.Context) ([]*entity.InvestorPreferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.InvestorPreferences
	for _, prefs := range f.prefs {
		out = append(out, prefs)
	}
	return out, nil
}

func (f *fakeProfileRepo) SaveFounderCompany(ctx context.Context, company *entity.FounderCompany) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.companies[company.ProfileID] = company
	return nil
}

func (f *fakeProfileRepo) GetFounderCompany(ctx context.Context, profileID string) (*entity.FounderCompany, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	company, ok := f.companies[profileID]
	if !ok {
		return nil, errors.NotFound("Founder company not found", nil)
	}
	return company, nil
}

func (f *fakeProfileRepo) ListFounderCompanies(ctx context.Context) ([]*entity.FounderCompany, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.FounderCompany
	for _, company := range f.companies {
		out = append(out, company)
	}
	return out, nil
}
