package record

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore 발송 이력을 Redis SET 하나에 저장합니다.
// 여러 인스턴스가 같은 이력을 공유해야 할 때 사용합니다.
type RedisStore struct {
	client redis.UniversalClient
	key    string
	addr   string
}

var _ Store = (*RedisStore)(nil)

// RedisOptions RedisStore 접속 정보입니다.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// NewRedisStore 접속은 첫 요청 시점에 이루어집니다. 연결 확인이 필요하면 Ping을 호출합니다.
func NewRedisStore(opts RedisOptions) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return newRedisStore(client, opts.Key, opts.Addr)
}

func newRedisStore(client redis.UniversalClient, key, addr string) *RedisStore {
	if client == nil {
		panic("record: Redis 클라이언트는 nil일 수 없습니다")
	}
	return &RedisStore{client: client, key: key, addr: addr}
}

func (s *RedisStore) Describe() string {
	return "redis:" + s.addr + "/" + s.key
}

// Ping Redis 서버 연결 상태를 확인합니다.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return NewErrStoreReadFailed(err, s.Describe())
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) ([]string, error) {
	members, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, NewErrStoreReadFailed(err, s.Describe())
	}
	return members, nil
}

// Save MULTI/EXEC 트랜잭션 안에서 키를 지우고 전체 집합을 다시 넣습니다.
func (s *RedisStore) Save(ctx context.Context, fingerprints []string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(fingerprints) > 0 {
			members := make([]any, len(fingerprints))
			for i, fp := range fingerprints {
				members[i] = fp
			}
			pipe.SAdd(ctx, s.key, members...)
		}
		return nil
	})
	if err != nil {
		return NewErrStoreWriteFailed(err, s.Describe())
	}
	return nil
}

// Close Redis 연결을 닫습니다.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
