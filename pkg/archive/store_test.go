package archive

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/play/majan/pkg/riichi"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return New(rdb), mr
}

func sampleEntry(top string) riichi.ArchiveEntry {
	return riichi.ArchiveEntry{
		Id:   "test-entry",
		Date: time.Date(2025, 8, 1, 21, 0, 0, 0, time.UTC),
		Players: []riichi.ArchivePlayer{
			{Name: top, Rank: 1, Score: 35000, FinalScore: 55, Chips: 2},
			{Name: "南家", Rank: 2, Score: 30000, FinalScore: 10},
			{Name: "西家", Rank: 3, Score: 20000, FinalScore: -20},
			{Name: "北家", Rank: 4, Score: 15000, FinalScore: -45, Chips: -2},
		},
		Log: []riichi.RoundLogEntry{
			{Kind: riichi.LogRon, Winners: []string{top}, Loser: "北家"},
			{Kind: riichi.LogRyuukyoku, Tenpai: []string{top, "南家"}},
		},
	}
}

func TestStoreLoadEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	entries, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	want := []riichi.ArchiveEntry{sampleEntry("東家")}
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].Id, got[0].Id)
	assert.Equal(t, want[0].Players, got[0].Players)
	assert.Equal(t, want[0].Log, got[0].Log)
	assert.True(t, want[0].Date.Equal(got[0].Date))
}

func TestStoreAppend(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, sampleEntry("東家")))
	require.NoError(t, s.Append(ctx, sampleEntry("山田")))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "山田", got[1].Players[0].Name)
}

func TestStoreCorruptBlobTreatedAsEmpty(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	// 损坏的存档按无历史处理，不报错
	require.NoError(t, mr.Set(defaultKey, "{not json"))
	entries, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// 合法 JSON 但结构不符同样按无历史处理
	require.NoError(t, mr.Set(defaultKey, `{"foo": 1}`))
	entries, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// 之后可正常追加
	require.NoError(t, s.Append(ctx, sampleEntry("東家")))
	entries, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreCustomKey(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	s := New(rdb, WithKey("majan:test:history"))
	require.NoError(t, s.Save(context.Background(), []riichi.ArchiveEntry{sampleEntry("東家")}))
	assert.True(t, mr.Exists("majan:test:history"))
	assert.False(t, mr.Exists(defaultKey))
}

func TestGameFinishWritesArchive(t *testing.T) {
	s, _ := newTestStore(t)

	g := riichi.NewGame(riichi.WithRecorder(s))
	g.Players[0].Score = 35000
	g.Players[1].Score = 30000
	g.Players[2].Score = 20000
	g.Players[3].Score = 15000
	require.NoError(t, g.Finish())

	entries, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.NotEmpty(t, entry.Id)
	require.Len(t, entry.Players, 4)
	assert.Equal(t, "東家", entry.Players[0].Name)
	assert.Equal(t, 1, entry.Players[0].Rank)
	assert.Equal(t, 55, entry.Players[0].FinalScore)
	assert.Equal(t, -45, entry.Players[3].FinalScore)
}
