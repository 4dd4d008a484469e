package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/play/majan/pkg/riichi"
)

const defaultKey = "majan:history"

// Store 跨场次成绩存档
// 整个存档作为一个 JSON blob 存在单个键里：启动时读一次，每次终局整体覆写
type Store struct {
	rdb redis.Cmdable
	key string
}

var _ riichi.Recorder = (*Store)(nil)

// Option Store 的配置选项
type Option func(*Store)

// WithKey 设置存档使用的键，默认为 majan:history
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// New 创建存档
func New(rdb redis.Cmdable, opts ...Option) *Store {
	s := &Store{
		rdb: rdb,
		key: defaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load 读取全部存档
// 键不存在或内容损坏都按"没有历史"处理，不作为错误返回
func (s *Store) Load(ctx context.Context) ([]riichi.ArchiveEntry, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis GET failed: %w", err)
	}
	if !gjson.ValidBytes(raw) {
		log.Warn().Str("key", s.key).Int("bytes", len(raw)).Msg("archive blob is not valid json, treating as empty")
		return nil, nil
	}
	var entries []riichi.ArchiveEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("archive blob does not match schema, treating as empty")
		return nil, nil
	}
	return entries, nil
}

// Save 整体覆写存档
func (s *Store) Save(ctx context.Context, entries []riichi.ArchiveEntry) error {
	if entries == nil {
		entries = []riichi.ArchiveEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("json marshal failed: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis SET failed: %w", err)
	}
	log.Trace().Str("key", s.key).Int("entries", len(entries)).Msg("archive saved")
	return nil
}

// Append 追加一条终局记录
func (s *Store) Append(ctx context.Context, entry riichi.ArchiveEntry) error {
	entries, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return s.Save(ctx, append(entries, entry))
}
