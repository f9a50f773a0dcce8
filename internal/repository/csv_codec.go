package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/unclebandit/campaign-insights/internal/errors"
	"github.com/unclebandit/campaign-insights/internal/model"
)

var (
	InfluencerColumns = []string{"ID", "name", "category", "gender", "follower_count", "platform"}
	PostColumns       = []string{"influencer_id", "platform", "date", "URL", "caption", "reach", "likes", "comments"}
	TrackingColumns   = []string{"source", "campaign", "influencer_id", "user_id", "product", "date", "orders", "revenue"}
	PayoutColumns     = []string{"influencer_id", "basis", "rate", "orders", "total_payout"}
)

// table is a parsed CSV with its header indexed by column name.
type table struct {
	file  string
	index map[string]int
	rows  [][]string
}

func readTable(r io.Reader, file string, required []string) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	if len(records) == 0 {
		return nil, appErrors.NewMissingColumn(file, required[0])
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, appErrors.NewMissingColumn(file, col)
		}
	}

	return &table{file: file, index: index, rows: records[1:]}, nil
}

// each walks the data rows; line numbers in errors count the header as line 1.
func (t *table) each(fn func(row cursor) error) error {
	for i, rec := range t.rows {
		if isBlank(rec) {
			continue
		}
		if err := fn(cursor{t: t, rec: rec, line: i + 2}); err != nil {
			return err
		}
	}
	return nil
}

type cursor struct {
	t    *table
	rec  []string
	line int
}

func (c cursor) str(col string) string {
	i := c.t.index[col]
	if i >= len(c.rec) {
		return ""
	}
	return strings.TrimSpace(c.rec[i])
}

func (c cursor) intVal(col string) (int, error) {
	raw := c.str(col)
	n, err := strconv.Atoi(raw)
	if err == nil {
		return n, nil
	}
	// tolerate integral floats such as "12.0"
	f, ferr := strconv.ParseFloat(raw, 64)
	if ferr == nil && f == math.Trunc(f) && f >= minIntFloat && f < maxIntFloat {
		return int(f), nil
	}
	return 0, appErrors.NewMalformedValue(c.t.file, c.line, col, raw, err)
}

// int64 bounds as floats; maxIntFloat is exclusive since MaxInt64 rounds up to 2^63
const (
	minIntFloat = -(1 << 63)
	maxIntFloat = 1 << 63
)

var errNotFinite = errors.New("not a finite number")

func (c cursor) floatVal(col string) (float64, error) {
	raw := c.str(col)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, appErrors.NewMalformedValue(c.t.file, c.line, col, raw, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, appErrors.NewMalformedValue(c.t.file, c.line, col, raw, errNotFinite)
	}
	return f, nil
}

func (c cursor) dateVal(col string) (time.Time, error) {
	raw := c.str(col)
	d, err := time.Parse(model.DateLayout, raw)
	if err == nil {
		return d, nil
	}
	if d, rerr := time.Parse(time.RFC3339, raw); rerr == nil {
		return d, nil
	}
	return time.Time{}, appErrors.NewMalformedValue(c.t.file, c.line, col, raw, err)
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func DecodeInfluencers(r io.Reader) ([]model.Influencer, error) {
	t, err := readTable(r, model.FileInfluencers, InfluencerColumns)
	if err != nil {
		return nil, err
	}
	out := []model.Influencer{}
	err = t.each(func(c cursor) error {
		id, err := c.intVal("ID")
		if err != nil {
			return err
		}
		followers, err := c.intVal("follower_count")
		if err != nil {
			return err
		}
		out = append(out, model.Influencer{
			ID:            id,
			Name:          c.str("name"),
			Category:      c.str("category"),
			Gender:        c.str("gender"),
			FollowerCount: followers,
			Platform:      c.str("platform"),
		})
		return nil
	})
	return out, err
}

func DecodePosts(r io.Reader) ([]model.Post, error) {
	t, err := readTable(r, model.FilePosts, PostColumns)
	if err != nil {
		return nil, err
	}
	out := []model.Post{}
	err = t.each(func(c cursor) error {
		p := model.Post{
			Platform: c.str("platform"),
			URL:      c.str("URL"),
			Caption:  c.str("caption"),
		}
		var err error
		if p.InfluencerID, err = c.intVal("influencer_id"); err != nil {
			return err
		}
		if p.Date, err = c.dateVal("date"); err != nil {
			return err
		}
		if p.Reach, err = c.intVal("reach"); err != nil {
			return err
		}
		if p.Likes, err = c.intVal("likes"); err != nil {
			return err
		}
		if p.Comments, err = c.intVal("comments"); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

func DecodeTracking(r io.Reader) ([]model.TrackingRecord, error) {
	t, err := readTable(r, model.FileTracking, TrackingColumns)
	if err != nil {
		return nil, err
	}
	out := []model.TrackingRecord{}
	err = t.each(func(c cursor) error {
		rec := model.TrackingRecord{
			Source:   c.str("source"),
			Campaign: c.str("campaign"),
			UserID:   c.str("user_id"),
			Product:  c.str("product"),
		}
		var err error
		if rec.InfluencerID, err = c.intVal("influencer_id"); err != nil {
			return err
		}
		if rec.Date, err = c.dateVal("date"); err != nil {
			return err
		}
		if rec.Orders, err = c.intVal("orders"); err != nil {
			return err
		}
		if rec.Revenue, err = c.floatVal("revenue"); err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	return out, err
}

func DecodePayouts(r io.Reader) ([]model.Payout, error) {
	t, err := readTable(r, model.FilePayouts, PayoutColumns)
	if err != nil {
		return nil, err
	}
	out := []model.Payout{}
	err = t.each(func(c cursor) error {
		p := model.Payout{Basis: c.str("basis")}
		var err error
		if p.InfluencerID, err = c.intVal("influencer_id"); err != nil {
			return err
		}
		if p.Rate, err = c.floatVal("rate"); err != nil {
			return err
		}
		if p.Orders, err = c.intVal("orders"); err != nil {
			return err
		}
		if p.TotalPayout, err = c.floatVal("total_payout"); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func writeRows(w io.Writer, header []string, n int, row func(i int) []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := cw.Write(row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func EncodeInfluencers(w io.Writer, rows []model.Influencer) error {
	return writeRows(w, InfluencerColumns, len(rows), func(i int) []string {
		r := rows[i]
		return []string{strconv.Itoa(r.ID), r.Name, r.Category, r.Gender, strconv.Itoa(r.FollowerCount), r.Platform}
	})
}

func EncodePosts(w io.Writer, rows []model.Post) error {
	return writeRows(w, PostColumns, len(rows), func(i int) []string {
		r := rows[i]
		return []string{
			strconv.Itoa(r.InfluencerID), r.Platform, r.Date.Format(model.DateLayout), r.URL, r.Caption,
			strconv.Itoa(r.Reach), strconv.Itoa(r.Likes), strconv.Itoa(r.Comments),
		}
	})
}

func EncodeTracking(w io.Writer, rows []model.TrackingRecord) error {
	return writeRows(w, TrackingColumns, len(rows), func(i int) []string {
		r := rows[i]
		return []string{
			r.Source, r.Campaign, strconv.Itoa(r.InfluencerID), r.UserID, r.Product,
			r.Date.Format(model.DateLayout), strconv.Itoa(r.Orders), formatFloat(r.Revenue),
		}
	})
}

func EncodePayouts(w io.Writer, rows []model.Payout) error {
	return writeRows(w, PayoutColumns, len(rows), func(i int) []string {
		r := rows[i]
		return []string{strconv.Itoa(r.InfluencerID), r.Basis, formatFloat(r.Rate), strconv.Itoa(r.Orders), formatFloat(r.TotalPayout)}
	})
}
