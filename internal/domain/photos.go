package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

const (
	// PhotoCapacity is the number of addressable photo slots on a profile.
	PhotoCapacity = 7
	MinPhotos     = 0
	MaxPhotos     = PhotoCapacity

	// CacheBustParam is the query parameter stamped on committed photo URLs.
	CacheBustParam = "v"

	// UploadURLTTL is how long a presigned upload URL stays valid.
	UploadURLTTL = time.Hour
)

// PhotoSlots holds photo URLs by slot index. An empty string is an empty slot.
type PhotoSlots []string

func (s PhotoSlots) MarshalJSON() ([]byte, error) {
	out := make([]*string, len(s))
	for i := range s {
		if s[i] != "" {
			out[i] = &s[i]
		}
	}
	return json.Marshal(out)
}

func (s *PhotoSlots) UnmarshalJSON(data []byte) error {
	var in []*string
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	slots := make(PhotoSlots, len(in))
	for i, v := range in {
		if v != nil {
			slots[i] = *v
		}
	}
	*s = slots
	return nil
}

// Occupied counts the non-empty slots.
func (s PhotoSlots) Occupied() int {
	n := 0
	for _, u := range s {
		if u != "" {
			n++
		}
	}
	return n
}

func (s PhotoSlots) IsFree(index int) bool {
	return index >= len(s) || s[index] == ""
}

// First returns the lowest-indexed photo, or nil when there is none.
func (s PhotoSlots) First() *string {
	for i := range s {
		if s[i] != "" {
			u := s[i]
			return &u
		}
	}
	return nil
}

// PhotoObjectKey is the storage key for a slot.
func PhotoObjectKey(accountID, index int) string {
	return fmt.Sprintf("%d/%d", accountID, index)
}

// PhotoObjectKeyFromURL recovers "{account_id}/{index}" from the last two path segments of a URL.
func PhotoObjectKeyFromURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return "", false
	}
	account, index := parts[len(parts)-2], parts[len(parts)-1]
	if _, err := strconv.Atoi(account); err != nil {
		return "", false
	}
	if _, err := strconv.Atoi(index); err != nil {
		return "", false
	}
	return account + "/" + index, true
}

// PhotoIndexFromURL parses the slot index out of the last path segment.
func PhotoIndexFromURL(raw string) (int, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("parse photo url: %w", err)
	}
	base := path.Base(u.Path)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	index, err := strconv.Atoi(base)
	if err != nil {
		return 0, fmt.Errorf("photo url %q carries no slot index", raw)
	}
	if index < 0 {
		return 0, fmt.Errorf("photo url %q carries a negative slot index", raw)
	}
	return index, nil
}

// PhotoUpdate assigns url to a slot. An empty URL clears the slot.
type PhotoUpdate struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}

// PhotoUpdateError reports a picture_urls entry that could not be read.
type PhotoUpdateError struct {
	Reason string
}

func (e *PhotoUpdateError) Error() string { return e.Reason }

func badPhotoUpdate(format string, args ...any) error {
	return &PhotoUpdateError{Reason: fmt.Sprintf(format, args...)}
}

// UnmarshalJSON accepts {"index": 1, "url": "..."}, [1, "..."] or a bare URL string
// whose slot index is encoded in its path.
func (p *PhotoUpdate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return badPhotoUpdate("Empty photo entry.")
	}

	switch data[0] {
	case '{':
		var obj struct {
			Index *json.Number `json:"index"`
			URL   string       `json:"url"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return badPhotoUpdate("Photo entry must have an integer index and a string url.")
		}
		p.URL = obj.URL
		if obj.Index == nil {
			index, err := PhotoIndexFromURL(obj.URL)
			if err != nil {
				return badPhotoUpdate("%q has no slot index in its path.", obj.URL)
			}
			p.Index = index
			return nil
		}
		index, err := strconv.Atoi(obj.Index.String())
		if err != nil {
			return badPhotoUpdate("Photo index %q is not an integer.", obj.Index.String())
		}
		p.Index = index
		return nil

	case '[':
		var pair []json.RawMessage
		if err := json.Unmarshal(data, &pair); err != nil || len(pair) != 2 {
			return badPhotoUpdate("Photo pair must have exactly two elements.")
		}
		var index int
		if err := json.Unmarshal(pair[0], &index); err != nil {
			var s string
			if json.Unmarshal(pair[0], &s) != nil {
				return badPhotoUpdate("Photo index is not an integer.")
			}
			if index, err = strconv.Atoi(s); err != nil {
				return badPhotoUpdate("Photo index %q is not an integer.", s)
			}
		}
		if err := json.Unmarshal(pair[1], &p.URL); err != nil {
			return badPhotoUpdate("Photo url must be a string.")
		}
		p.Index = index
		return nil

	case '"':
		if err := json.Unmarshal(data, &p.URL); err != nil {
			return badPhotoUpdate("Photo url must be a string.")
		}
		index, err := PhotoIndexFromURL(p.URL)
		if err != nil {
			return badPhotoUpdate("%q has no slot index in its path.", p.URL)
		}
		p.Index = index
		return nil
	}

	return badPhotoUpdate("Unsupported photo entry %s.", string(data))
}

// WithCacheBust sets the cache-busting parameter on raw to the unix time of at.
func WithCacheBust(raw string, at time.Time) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(CacheBustParam, strconv.FormatInt(at.Unix(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func hasCacheBust(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Query().Has(CacheBustParam)
}

func validPhotoURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// MergePhotoSlots applies updates by index on top of existing. Indexes past the end extend
// the list without shifting earlier entries; the result is truncated to PhotoCapacity.
// Every URL written by an update is re-stamped, older URLs only when they carry no stamp.
func MergePhotoSlots(existing PhotoSlots, updates []PhotoUpdate, at time.Time) (PhotoSlots, error) {
	verr := &ValidationError{}
	merged := append(PhotoSlots(nil), existing...)
	touched := make(map[int]bool, len(updates))

	for _, upd := range updates {
		if upd.Index < 0 {
			verr.Add("picture_urls", fmt.Sprintf("Slot index %d is negative.", upd.Index))
			continue
		}
		if upd.URL != "" && !validPhotoURL(upd.URL) {
			verr.Add("picture_urls", fmt.Sprintf("%q is not a valid URL.", upd.URL))
			continue
		}
		if upd.Index >= PhotoCapacity {
			// dropped by truncation
			continue
		}
		for len(merged) <= upd.Index {
			merged = append(merged, "")
		}
		merged[upd.Index] = upd.URL
		touched[upd.Index] = true
	}
	if !verr.Empty() {
		return nil, verr
	}

	if len(merged) > PhotoCapacity {
		merged = merged[:PhotoCapacity]
	}

	for i, u := range merged {
		if u == "" || (!touched[i] && hasCacheBust(u)) {
			continue
		}
		stamped, err := WithCacheBust(u, at)
		if err != nil {
			return nil, NewValidationError("picture_urls", fmt.Sprintf("%q is not a valid URL.", u))
		}
		merged[i] = stamped
	}

	for len(merged) > 0 && merged[len(merged)-1] == "" {
		merged = merged[:len(merged)-1]
	}

	if n := len(merged); n < MinPhotos || n > MaxPhotos {
		return nil, NewValidationError("picture_urls", fmt.Sprintf("Ensure this list has between %d and %d items.", MinPhotos, MaxPhotos))
	}
	return merged, nil
}

// StalePhotoKeys lists storage keys referenced by before but no longer by after.
func StalePhotoKeys(before, after PhotoSlots) []string {
	keep := make(map[string]bool, len(after))
	for _, u := range after {
		if key, ok := PhotoObjectKeyFromURL(u); ok {
			keep[key] = true
		}
	}

	var stale []string
	seen := make(map[string]bool)
	for _, u := range before {
		key, ok := PhotoObjectKeyFromURL(u)
		if !ok || keep[key] || seen[key] {
			continue
		}
		seen[key] = true
		stale = append(stale, key)
	}
	return stale
}

// CheckReservation validates a request to (re)reserve the given slot indexes.
// Re-reserving an occupied slot does not consume capacity.
func CheckReservation(slots PhotoSlots, indexes []int) error {
	if len(indexes) == 0 {
		return NewValidationError("photo_indexes", "At least one slot index is required.")
	}

	verr := &ValidationError{}
	seen := make(map[int]bool, len(indexes))
	fresh := 0
	for _, i := range indexes {
		switch {
		case i < 0 || i >= PhotoCapacity:
			verr.Add("photo_indexes", fmt.Sprintf("Slot index %d is outside 0..%d.", i, PhotoCapacity-1))
			continue
		case seen[i]:
			verr.Add("photo_indexes", fmt.Sprintf("Slot index %d is listed more than once.", i))
			continue
		}
		seen[i] = true
		if slots.IsFree(i) {
			fresh++
		}
	}
	if !verr.Empty() {
		return verr
	}

	if slots.Occupied()+fresh > PhotoCapacity {
		return ErrCapacityExceeded
	}
	return nil
}

// AllocateSlots picks the count lowest free slot indexes.
func AllocateSlots(slots PhotoSlots, count int) ([]int, error) {
	if count <= 0 {
		return nil, NewValidationError("photo_count", "Invalid photo count.")
	}
	if slots.Occupied()+count > PhotoCapacity {
		return nil, ErrCapacityExceeded
	}

	indexes := make([]int, 0, count)
	for i := 0; i < PhotoCapacity && len(indexes) < count; i++ {
		if slots.IsFree(i) {
			indexes = append(indexes, i)
		}
	}
	return indexes, nil
}
