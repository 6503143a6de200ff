package forms

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	DB "Backend-FormFlow/src/database"
	"Backend-FormFlow/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	cacheTTL        = 5 * time.Minute
	listCachePrefix = "forms:list:"
	itemCachePrefix = "forms:item:"
)

// --- Redis Cache Helper ---
func listCacheKey(filter models.FormListFilter) string {
	b, _ := json.Marshal(filter)
	h := sha1.Sum(b)
	return listCachePrefix + hex.EncodeToString(h[:])
}

func itemCacheKey(id primitive.ObjectID) string {
	return itemCachePrefix + id.Hex()
}

func (s *Service) setCache(key string, value interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.cache.Set(DB.RedisCtx, key, b, ttl)
}

func (s *Service) getCache(key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	val, err := s.cache.Get(DB.RedisCtx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// invalidate drops every cached list plus the given items.
func (s *Service) invalidate(ids ...primitive.ObjectID) {
	if s.cache == nil {
		return
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, itemCacheKey(id))
	}
	if len(keys) > 0 {
		s.cache.Del(DB.RedisCtx, keys...)
	}
	iter := s.cache.Scan(DB.RedisCtx, 0, listCachePrefix+"*", 0).Iterator()
	for iter.Next(DB.RedisCtx) {
		s.cache.Del(DB.RedisCtx, iter.Val())
	}
}
