package temporal

import (
	"testing"
	"time"

	"github.com/fennel-ai/dfschema/coltype"
	"github.com/fennel-ai/dfschema/schema"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventRecord struct {
	ID            int32     `df:"id"`
	Name          string    `df:"name"`
	EventDate     Date      `df:"event_date"`
	EventDatetime time.Time `df:"event_datetime"`
	EventTime     TimeOfDay `df:"event_time"`
	CreatedAt     UTCTime   `df:"created_at"`
}

func TestTemporalSchema(t *testing.T) {
	s := schema.MustFor[eventRecord]()
	require.Equal(t, 6, s.Len())
	assert.Equal(t, []string{"id", "name", "event_date", "event_datetime", "event_time", "created_at"}, s.Names())

	get := func(name string) coltype.ColumnType {
		ct, ok := s.Get(name)
		require.True(t, ok, "column '%s'", name)
		return ct
	}
	assert.True(t, get("event_date").Equal(coltype.Date))
	assert.True(t, get("event_time").Equal(coltype.Time))
	assert.True(t, get("event_datetime").Equal(coltype.Datetime(coltype.Microseconds, mo.None[string]())))
	assert.True(t, get("created_at").Equal(coltype.Datetime(coltype.Microseconds, mo.Some("UTC"))))
}

func eventTable() *schema.Observed {
	return schema.NewObserved().
		Add("id", coltype.Int32).
		Add("name", coltype.String).
		Add("event_date", coltype.Date).
		Add("event_datetime", coltype.Datetime(coltype.Microseconds, mo.None[string]())).
		Add("event_time", coltype.Time).
		Add("created_at", coltype.Datetime(coltype.Microseconds, mo.Some("UTC")))
}

func TestTemporalValidate(t *testing.T) {
	s := schema.MustFor[eventRecord]()
	assert.NoError(t, s.Validate(eventTable()))
	assert.NoError(t, s.ValidateStrict(eventTable()))
}

func TestTemporalTypeMismatch(t *testing.T) {
	s := schema.MustFor[eventRecord]()

	// Dates still serialized as text do not pass.
	df := eventTable().Add("event_date", coltype.String)
	err := s.Validate(df)
	require.Error(t, err)
	assert.Equal(t, "Column 'event_date' has type String but expected Date", err.Error())

	// A zoned timestamp does not satisfy a naive datetime column.
	df = eventTable().Add("event_datetime", coltype.Datetime(coltype.Microseconds, mo.Some("UTC")))
	err = s.Validate(df)
	require.Error(t, err)
	assert.Equal(t,
		"Column 'event_datetime' has type Datetime(Microseconds, UTC) but expected Datetime(Microseconds)",
		err.Error())
}

func TestOptionalTemporal(t *testing.T) {
	type optionalEvent struct {
		ID            int32      `df:"id"`
		EventDate     *Date      `df:"event_date"`
		EventDatetime *time.Time `df:"event_datetime"`
	}
	s := schema.MustFor[optionalEvent]()
	df := schema.NewObserved().
		Add("id", coltype.Int32).
		Add("event_date", coltype.Date).
		Add("event_datetime", coltype.Datetime(coltype.Microseconds, mo.None[string]()))
	assert.NoError(t, s.Validate(df))
	assert.NoError(t, s.ValidateStrict(df))
}

func TestDate(t *testing.T) {
	d := DateOf(time.Date(2023, time.March, 1, 14, 15, 30, 0, time.UTC))
	assert.Equal(t, Date{Year: 2023, Month: time.March, Day: 1}, d)
	assert.Equal(t, "2023-03-01", d.String())
	assert.Equal(t, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), d.Time(time.UTC))
}

func TestTimeOfDay(t *testing.T) {
	tod := TimeOfDayOf(time.Date(2023, time.January, 1, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30}, tod)
	assert.Equal(t, "09:30:00", tod.String())

	precise := TimeOfDay{Hour: 11, Minute: 45, Second: 30, Nanosecond: 123456789}
	assert.Equal(t, "11:45:30.123456789", precise.String())

	combined := tod.On(Date{Year: 2023, Month: time.January, Day: 1}, time.UTC)
	assert.Equal(t, time.Date(2023, time.January, 1, 9, 30, 0, 0, time.UTC), combined)
}

func TestUTCTime(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	at := time.Date(2023, time.January, 1, 7, 0, 0, 0, est)
	u := AtUTC(at)
	assert.True(t, u.Time().Equal(at))
	assert.Equal(t, time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC), u.Time())
	assert.Equal(t, "2023-01-01T12:00:00Z", u.String())
}
