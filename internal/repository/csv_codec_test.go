package repository

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/campaign-insights/internal/errors"
	"github.com/unclebandit/campaign-insights/internal/model"
)

func TestDecodeInfluencersByHeaderName(t *testing.T) {
	// columns reordered, an extra column, a BOM and a blank line
	in := "\ufeffplatform,ID,name,extra,category,gender,follower_count\n" +
		"Instagram,1,Asha Rao,x,Fitness,Female,12000\n" +
		"\n" +
		"YouTube,2,\"Cole, Ben\",y,Health,Male,450000.0\n"

	rows, err := DecodeInfluencers(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, model.Influencer{ID: 1, Name: "Asha Rao", Category: "Fitness", Gender: "Female", FollowerCount: 12000, Platform: "Instagram"}, rows[0])
	assert.Equal(t, "Cole, Ben", rows[1].Name)
	assert.Equal(t, 450000, rows[1].FollowerCount)
}

func TestDecodeMissingColumn(t *testing.T) {
	_, err := DecodePayouts(strings.NewReader("influencer_id,basis,rate,orders\n1,post,500,3\n"))

	var mc *appErrors.ErrMissingColumn
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, model.FilePayouts, mc.File)
	assert.Equal(t, "total_payout", mc.Column)
}

func TestDecodeEmptyFile(t *testing.T) {
	_, err := DecodeTracking(strings.NewReader(""))
	assert.True(t, appErrors.IsLoadError(err))
}

func TestDecodeMalformedValue(t *testing.T) {
	in := "source,campaign,influencer_id,user_id,product,date,orders,revenue\n" +
		"Instagram,FitLife,1,u1,Omega-3,2025-03-01,2,120.50\n" +
		"Instagram,FitLife,1,u2,Omega-3,2025-03-02,2,abc\n"

	_, err := DecodeTracking(strings.NewReader(in))
	var mv *appErrors.ErrMalformedValue
	require.True(t, errors.As(err, &mv))
	assert.Equal(t, 3, mv.Line)
	assert.Equal(t, "revenue", mv.Column)
	assert.Equal(t, "abc", mv.Value)
}

func TestDecodeRejectsNonFiniteNumbers(t *testing.T) {
	tests := []struct {
		name   string
		decode func(io.Reader) error
		in     string
		column string
		value  string
	}{
		{
			name:   "payout total NaN",
			decode: func(r io.Reader) error { _, err := DecodePayouts(r); return err },
			in:     "influencer_id,basis,rate,orders,total_payout\n1,post,250,3,NaN\n",
			column: "total_payout",
			value:  "NaN",
		},
		{
			name:   "payout rate -Inf",
			decode: func(r io.Reader) error { _, err := DecodePayouts(r); return err },
			in:     "influencer_id,basis,rate,orders,total_payout\n1,post,-Inf,3,250\n",
			column: "rate",
			value:  "-Inf",
		},
		{
			name:   "tracking revenue Inf",
			decode: func(r io.Reader) error { _, err := DecodeTracking(r); return err },
			in:     "source,campaign,influencer_id,user_id,product,date,orders,revenue\nInstagram,A,1,u1,Omega-3,2025-01-03,2,Inf\n",
			column: "revenue",
			value:  "Inf",
		},
		{
			name:   "orders Inf",
			decode: func(r io.Reader) error { _, err := DecodeTracking(r); return err },
			in:     "source,campaign,influencer_id,user_id,product,date,orders,revenue\nInstagram,A,1,u1,Omega-3,2025-01-03,Inf,10\n",
			column: "orders",
			value:  "Inf",
		},
		{
			name:   "follower count out of int range",
			decode: func(r io.Reader) error { _, err := DecodeInfluencers(r); return err },
			in:     "ID,name,category,gender,follower_count,platform\n1,Asha,Fitness,Female,1e300,Instagram\n",
			column: "follower_count",
			value:  "1e300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode(strings.NewReader(tt.in))
			var mv *appErrors.ErrMalformedValue
			require.True(t, errors.As(err, &mv), "got %v", err)
			assert.Equal(t, 2, mv.Line)
			assert.Equal(t, tt.column, mv.Column)
			assert.Equal(t, tt.value, mv.Value)
			assert.True(t, appErrors.IsLoadError(err))
		})
	}
}

func TestDecodeBadDate(t *testing.T) {
	in := "influencer_id,platform,date,URL,caption,reach,likes,comments\n" +
		"1,Instagram,03/01/2025,http://x,hi,10,2,1\n"
	_, err := DecodePosts(strings.NewReader(in))
	var mv *appErrors.ErrMalformedValue
	require.True(t, errors.As(err, &mv))
	assert.Equal(t, "date", mv.Column)
}

func sampleDataset() *model.Dataset {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &model.Dataset{
		Influencers: []model.Influencer{
			{ID: 1, Name: "Asha Rao", Category: "Fitness", Gender: "Female", FollowerCount: 12000, Platform: "Instagram"},
			{ID: 2, Name: "Ben Cole", Category: "Health", Gender: "Male", FollowerCount: 340000, Platform: "YouTube"},
		},
		Posts: []model.Post{
			{InfluencerID: 1, Platform: "Instagram", Date: day, URL: "https://example.com/p/1", Caption: "Leg day, again.", Reach: 5000, Likes: 300, Comments: 12},
		},
		Tracking: []model.TrackingRecord{
			{Source: "Instagram", Campaign: "FitLife", InfluencerID: 1, UserID: "u-1", Product: "Omega-3", Date: day, Orders: 2, Revenue: 410.25},
			{Source: "YouTube", Campaign: "BoostUp", InfluencerID: 2, UserID: "u-2", Product: "Whey Protein", Date: day, Orders: 1, Revenue: 99.99},
		},
		Payouts: []model.Payout{
			{InfluencerID: 1, Basis: model.BasisOrder, Rate: 700, Orders: 3, TotalPayout: 2100},
			{InfluencerID: 2, Basis: model.BasisPost, Rate: 1500, Orders: 9, TotalPayout: 1500},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ds := sampleDataset()

	var inf, posts, tracking, payouts bytes.Buffer
	require.NoError(t, EncodeInfluencers(&inf, ds.Influencers))
	require.NoError(t, EncodePosts(&posts, ds.Posts))
	require.NoError(t, EncodeTracking(&tracking, ds.Tracking))
	require.NoError(t, EncodePayouts(&payouts, ds.Payouts))

	assert.True(t, strings.HasPrefix(inf.String(), "ID,name,category,gender,follower_count,platform\n"))

	got, err := DecodeDataset(map[string]io.Reader{
		model.FileInfluencers: &inf,
		model.FilePosts:       &posts,
		model.FileTracking:    &tracking,
		model.FilePayouts:     &payouts,
	})
	require.NoError(t, err)
	assert.Equal(t, ds.Influencers, got.Influencers)
	assert.Equal(t, ds.Posts, got.Posts)
	assert.Equal(t, ds.Tracking, got.Tracking)
	assert.Equal(t, ds.Payouts, got.Payouts)
}

func TestDecodeDatasetIncomplete(t *testing.T) {
	_, err := DecodeDataset(map[string]io.Reader{
		model.FileInfluencers: strings.NewReader(""),
		model.FileTracking:    strings.NewReader(""),
	})

	var inc *appErrors.ErrIncompleteDataset
	require.True(t, errors.As(err, &inc))
	assert.Equal(t, []string{model.FilePosts, model.FilePayouts}, inc.Missing)
}
