package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/school-library/library/internal/model"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		in      string
		want    model.Date
		wantErr bool
	}{
		{name: "date only", in: `"2001-09-30"`, want: model.NewDate(2001, time.September, 30)},
		{name: "timestamp", in: `"2001-09-30T22:10:00-03:00"`, want: model.NewDate(2001, time.September, 30)},
		{name: "null", in: `null`},
		{name: "empty", in: `""`},
		{name: "garbage", in: `"30/09/2001"`, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var d model.Date
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, d)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(struct {
		Set   model.Date `json:"set"`
		Unset model.Date `json:"unset"`
	}{Set: model.NewDate(2024, time.February, 29)})
	require.NoError(t, err)
	require.JSONEq(t, `{"set":"2024-02-29","unset":null}`, string(b))
}

func TestDate_PgCodec(t *testing.T) {
	t.Parallel()
	d := model.NewDate(1999, time.December, 31)
	v, err := d.DateValue()
	require.NoError(t, err)
	require.True(t, v.Valid)

	var back model.Date
	require.NoError(t, back.ScanDate(v))
	require.Equal(t, d, back)

	require.NoError(t, back.ScanDate(pgtype.Date{}))
	require.True(t, back.IsZero())

	v, err = model.Date{}.DateValue()
	require.NoError(t, err)
	require.False(t, v.Valid)
}

func TestRequests_KeepIDFromPath(t *testing.T) {
	t.Parallel()
	req := model.LoanRequest{StudentID: 1, BookID: 2, Status: "ativo"}
	loan := req.Loan(9)
	require.Equal(t, 9, loan.ID)
	require.Equal(t, 1, loan.StudentID)
	require.Equal(t, 2, loan.BookID)

	require.Equal(t, 5, model.StudentRequest{Name: "Ana"}.Student(5).ID)
	require.Equal(t, 6, model.BookRequest{Title: "A"}.Book(6).ID)
}
