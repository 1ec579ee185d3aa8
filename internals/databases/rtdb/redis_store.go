// file: internals/databases/rtdb/redis_store.go
package rtdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"kampusku_backend/internals/configs"
)

// RedisStore menyimpan satu dokumen JSON per koleksi top-level
// (segmen path pertama) di satu key redis. Path yang lebih dalam
// dinavigasi di dalam dokumen.
type RedisStore struct {
	client *redis.Client
	prefix string
}

const keyPrefix = "rtdb:"

func New(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("rtdb: parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("rtdb: connect redis: %w", err)
	}

	log.Printf("[RTDB] terkoneksi ke %s", opts.Addr)
	return &RedisStore{client: client, prefix: keyPrefix}, nil
}

func NewFromEnv() (*RedisStore, error) {
	return New(configs.RedisURL)
}

// NewWithClient dipakai test / wiring khusus (mis. miniredis).
func NewWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: keyPrefix}
}

func (s *RedisStore) Close() error { return s.client.Close() }

/* =========================================================
   Get / Set / Remove / Push
========================================================= */

func (s *RedisStore) Get(ctx context.Context, path string) (any, error) {
	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	doc, err := s.loadDoc(ctx, segs[0])
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	node := any(doc)
	for _, seg := range segs[1:] {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, nil
		}
		node, ok = m[seg]
		if !ok {
			return nil, nil
		}
	}
	return node, nil
}

func (s *RedisStore) Set(ctx context.Context, path string, value any) error {
	segs, err := splitPath(path)
	if err != nil {
		return err
	}

	// Koleksi utuh
	if len(segs) == 1 {
		if value == nil {
			return s.client.Del(ctx, s.prefix+segs[0]).Err()
		}
		norm, err := normalize(value)
		if err != nil {
			return err
		}
		return s.saveDoc(ctx, segs[0], norm)
	}

	// Read-modify-write di dalam dokumen koleksi
	doc, err := s.loadDoc(ctx, segs[0])
	if err != nil {
		return err
	}
	root := map[string]any{}
	if m, ok := doc.(map[string]any); ok {
		root = m
	}

	if value == nil {
		removeAt(root, segs[1:])
	} else {
		norm, err := normalize(value)
		if err != nil {
			return err
		}
		setAt(root, segs[1:], norm)
	}

	if len(root) == 0 {
		return s.client.Del(ctx, s.prefix+segs[0]).Err()
	}
	return s.saveDoc(ctx, segs[0], root)
}

func (s *RedisStore) Remove(ctx context.Context, path string) error {
	return s.Set(ctx, path, nil)
}

// Push menghasilkan child key unik. Prefix milidetik menjaga urutan
// leksikal kira-kira sama dengan urutan waktu pembuatan.
func (s *RedisStore) Push(ctx context.Context, path string) (string, error) {
	if _, err := splitPath(path); err != nil {
		return "", err
	}
	u := uuid.New().String()
	return fmt.Sprintf("-%013d-%s", time.Now().UnixMilli(), u[:8]), nil
}

/* =========================================================
   Internal
========================================================= */

func (s *RedisStore) loadDoc(ctx context.Context, collection string) (any, error) {
	raw, err := s.client.Get(ctx, s.prefix+collection).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rtdb: get %s: %w", collection, err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("rtdb: decode dokumen %s: %w", collection, err)
	}
	return doc, nil
}

func (s *RedisStore) saveDoc(ctx context.Context, collection string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("rtdb: encode dokumen %s: %w", collection, err)
	}
	if err := s.client.Set(ctx, s.prefix+collection, raw, 0).Err(); err != nil {
		return fmt.Errorf("rtdb: set %s: %w", collection, err)
	}
	return nil
}

// setAt menulis value pada segs; parent map dibuat (atau ditimpa bila
// bukan map) sepanjang jalan.
func setAt(root map[string]any, segs []string, value any) {
	node := root
	for _, seg := range segs[:len(segs)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[seg] = child
		}
		node = child
	}
	node[segs[len(segs)-1]] = value
}

// removeAt menghapus node pada segs lalu memangkas parent yang jadi kosong.
func removeAt(root map[string]any, segs []string) {
	parents := make([]map[string]any, 0, len(segs))
	node := root
	for _, seg := range segs[:len(segs)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			return
		}
		parents = append(parents, node)
		node = child
	}
	delete(node, segs[len(segs)-1])

	// prune kosong dari dalam ke luar
	for i := len(parents) - 1; i >= 0; i-- {
		if len(node) == 0 {
			delete(parents[i], segs[i])
		}
		node = parents[i]
	}
}
