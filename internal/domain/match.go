package domain

import "time"

// Match is an unordered pair of accounts, stored with User1ID < User2ID.
type Match struct {
	ID        int       `json:"id" db:"id"`
	User1ID   int       `json:"user1_id" db:"user1_id"`
	User2ID   int       `json:"user2_id" db:"user2_id"`
	CreatedAt time.Time `json:"matched_at" db:"matched_at"`
}

// NewMatch builds a match with the pair normalised.
func NewMatch(a, b int) *Match {
	if a > b {
		a, b = b, a
	}
	return &Match{User1ID: a, User2ID: b}
}

func (m *Match) HasUser(userID int) bool {
	return m.User1ID == userID || m.User2ID == userID
}

func (m *Match) GetOtherUserID(userID int) (int, bool) {
	if m.User1ID == userID {
		return m.User2ID, true
	}
	if m.User2ID == userID {
		return m.User1ID, true
	}
	return 0, false
}

// Like is a one-directional expression of interest. A reciprocal pair becomes a Match.
type Like struct {
	ID            int       `json:"id" db:"id"`
	FromAccountID int       `json:"from_user_id" db:"from_account_id"`
	ToAccountID   int       `json:"to_user_id" db:"to_account_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Candidate is the slice of account and profile data that discovery reads.
type Candidate struct {
	AccountID   int
	FirstName   string
	PictureURLs PhotoSlots
}

// MatchCard is the display projection of another account.
type MatchCard struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"first_name"`
	PictureURL *string `json:"picture_url"`
}

func (c Candidate) Card() MatchCard {
	return MatchCard{
		ID:         c.AccountID,
		FirstName:  c.FirstName,
		PictureURL: c.PictureURLs.First(),
	}
}

// BirthdateWindow turns an inclusive preferred age range into an inclusive birthdate range.
// The oldest accepted age gives the earliest birthdate.
func BirthdateWindow(today time.Time, minAge, maxAge int) (minBirthdate, maxBirthdate time.Time) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(-maxAge, 0, 0), day.AddDate(-minAge, 0, 0)
}
