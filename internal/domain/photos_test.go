package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var stampAt = time.Unix(200, 0)

func TestMergePhotoSlots(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		existing PhotoSlots
		updates  []PhotoUpdate
		want     PhotoSlots
	}{
		{
			name:     "sparse index extends without shifting",
			existing: PhotoSlots{"https://cdn.example.com/1/0?v=100"},
			updates:  []PhotoUpdate{{Index: 2, URL: "https://cdn.example.com/1/2"}},
			want:     PhotoSlots{"https://cdn.example.com/1/0?v=100", "", "https://cdn.example.com/1/2?v=200"},
		},
		{
			name:     "rewritten slot gets a fresh stamp",
			existing: PhotoSlots{"https://cdn.example.com/1/0?v=100"},
			updates:  []PhotoUpdate{{Index: 0, URL: "https://cdn.example.com/1/0?v=100"}},
			want:     PhotoSlots{"https://cdn.example.com/1/0?v=200"},
		},
		{
			name:     "unstamped legacy url is stamped",
			existing: PhotoSlots{"https://cdn.example.com/1/0"},
			updates:  nil,
			want:     PhotoSlots{"https://cdn.example.com/1/0?v=200"},
		},
		{
			name:     "clearing the last slot trims the tail",
			existing: PhotoSlots{"https://cdn.example.com/1/0?v=1", "", "https://cdn.example.com/1/2?v=1"},
			updates:  []PhotoUpdate{{Index: 2}},
			want:     PhotoSlots{"https://cdn.example.com/1/0?v=1"},
		},
		{
			name:     "index past capacity is dropped",
			existing: nil,
			updates:  []PhotoUpdate{{Index: PhotoCapacity, URL: "https://cdn.example.com/1/7"}},
			want:     PhotoSlots{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MergePhotoSlots(tc.existing, tc.updates, stampAt)
			require.NoError(t, err)
			if len(tc.want) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMergePhotoSlots_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	existing := PhotoSlots{"https://cdn.example.com/1/0?v=1"}
	_, err := MergePhotoSlots(existing, []PhotoUpdate{{Index: 0, URL: "https://cdn.example.com/1/0"}}, stampAt)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/1/0?v=1", existing[0])
}

func TestMergePhotoSlots_Rejects(t *testing.T) {
	t.Parallel()

	for name, upd := range map[string]PhotoUpdate{
		"negative index": {Index: -1, URL: "https://cdn.example.com/1/0"},
		"relative url":   {Index: 0, URL: "/1/0"},
		"ftp url":        {Index: 0, URL: "ftp://cdn.example.com/1/0"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := MergePhotoSlots(nil, []PhotoUpdate{upd}, stampAt)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Contains(t, verr.Fields, "picture_urls")
		})
	}
}

func TestStalePhotoKeys(t *testing.T) {
	t.Parallel()

	before := PhotoSlots{
		"https://storage.example.com/photos/1/0?v=1",
		"https://storage.example.com/photos/1/1?v=1",
		"",
		"https://elsewhere.example.com/avatar.png",
	}
	after := PhotoSlots{"https://storage.example.com/photos/1/0?v=2"}

	require.Equal(t, []string{"1/1"}, StalePhotoKeys(before, after))
	require.Empty(t, StalePhotoKeys(after, before))
}

func TestPhotoObjectKeyFromURL(t *testing.T) {
	t.Parallel()

	key, ok := PhotoObjectKeyFromURL("https://storage.googleapis.com/bucket/42/3?v=9")
	require.True(t, ok)
	require.Equal(t, "42/3", key)
	require.Equal(t, PhotoObjectKey(42, 3), key)

	_, ok = PhotoObjectKeyFromURL("https://cdn.example.com/3")
	require.False(t, ok)
	_, ok = PhotoObjectKeyFromURL("https://cdn.example.com/me/3")
	require.False(t, ok)
}

func TestCheckReservation(t *testing.T) {
	t.Parallel()

	full := make(PhotoSlots, PhotoCapacity)
	for i := range full {
		full[i] = "https://cdn.example.com/1/" + string(rune('0'+i))
	}

	require.NoError(t, CheckReservation(full, []int{0, 6}), "re-reserving occupied slots is free")
	require.NoError(t, CheckReservation(PhotoSlots{}, []int{0, 1, 2, 3, 4, 5, 6}))

	cases := map[string][]int{
		"empty":        nil,
		"out of range": {PhotoCapacity},
		"negative":     {-1},
		"duplicate":    {2, 2},
	}
	for name, indexes := range cases {
		t.Run(name, func(t *testing.T) {
			var verr *ValidationError
			require.ErrorAs(t, CheckReservation(PhotoSlots{}, indexes), &verr)
			require.Contains(t, verr.Fields, "photo_indexes")
		})
	}
}

func TestAllocateSlots(t *testing.T) {
	t.Parallel()

	slots := PhotoSlots{"https://cdn.example.com/1/0", "", "https://cdn.example.com/1/2"}

	got, err := AllocateSlots(slots, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, got)

	_, err = AllocateSlots(slots, 0)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "photo_count")

	_, err = AllocateSlots(slots, PhotoCapacity-1)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	got, err = AllocateSlots(slots, PhotoCapacity-2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4, 5, 6}, got)
}

func TestPhotoUpdate_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var updates []PhotoUpdate
	err := json.Unmarshal([]byte(`[
		{"index": 1, "url": "https://cdn.example.com/9/1"},
		{"url": "https://cdn.example.com/9/5"},
		[2, "https://cdn.example.com/9/2"],
		["4", ""],
		"https://cdn.example.com/9/3.jpg"
	]`), &updates)
	require.NoError(t, err)
	require.Equal(t, []PhotoUpdate{
		{Index: 1, URL: "https://cdn.example.com/9/1"},
		{Index: 5, URL: "https://cdn.example.com/9/5"},
		{Index: 2, URL: "https://cdn.example.com/9/2"},
		{Index: 4, URL: ""},
		{Index: 3, URL: "https://cdn.example.com/9/3.jpg"},
	}, updates)

	for _, raw := range []string{
		`[1]`,
		`["x", "https://cdn.example.com/9/1"]`,
		`[1, 2]`,
		`"https://cdn.example.com/9/cover"`,
		`{"index": 1.5, "url": "https://cdn.example.com/9/1"}`,
		`true`,
	} {
		var u PhotoUpdate
		var perr *PhotoUpdateError
		require.ErrorAs(t, json.Unmarshal([]byte(raw), &u), &perr, raw)
		require.NotEmpty(t, perr.Reason)
	}
}

func TestPhotoSlots_JSONRendersEmptySlotsAsNull(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(PhotoSlots{"", "https://cdn.example.com/1/1"})
	require.NoError(t, err)
	require.JSONEq(t, `[null,"https://cdn.example.com/1/1"]`, string(out))

	var back PhotoSlots
	require.NoError(t, json.Unmarshal(out, &back))
	require.Equal(t, PhotoSlots{"", "https://cdn.example.com/1/1"}, back)
	require.Equal(t, 1, back.Occupied())
	require.True(t, back.IsFree(0))
	require.True(t, back.IsFree(5))
	require.Equal(t, "https://cdn.example.com/1/1", *back.First())
	require.Nil(t, PhotoSlots{"", ""}.First())
}

func TestWithCacheBust_ReplacesStamp(t *testing.T) {
	t.Parallel()

	got, err := WithCacheBust("https://cdn.example.com/1/0?v=1&w=200", stampAt)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/1/0?v=200&w=200", got)
}

func TestPhotoUpdate_ErrorSurvivesSliceDecoding(t *testing.T) {
	t.Parallel()

	var req struct {
		PictureURLs []PhotoUpdate `json:"picture_urls"`
	}
	err := json.Unmarshal([]byte(`{"picture_urls": ["https://cdn.example.com/9/cover"]}`), &req)

	var perr *PhotoUpdateError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, `"https://cdn.example.com/9/cover" has no slot index in its path.`, perr.Reason)
}
