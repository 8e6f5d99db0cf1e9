package favorites

import (
	"context"
	"encoding/json"

	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/repository/storage"
	"github.com/pmyge/humo-tezkor-frontend/utils/logger"
	"go.uber.org/zap"
)

// FavoritesApp is the locally persisted favorite-product set. Purely device
// scoped, never synchronized with the server.
type FavoritesApp interface {
	Toggle(ctx context.Context, deviceID string, productID uint64) (bool, error)
	Contains(ctx context.Context, deviceID string, productID uint64) (bool, error)
	List(ctx context.Context, deviceID string) ([]uint64, error)
}

type favoritesAppImpl struct {
	storageRepo storage.Repository
}

func NewFavoritesApp(storageRepo storage.Repository) FavoritesApp {
	return &favoritesAppImpl{storageRepo: storageRepo}
}

// Toggle flips membership and persists immediately. Calling it twice returns
// the set to its prior state. Reports the new membership.
func (s *favoritesAppImpl) Toggle(ctx context.Context, deviceID string, productID uint64) (bool, error) {
	ids, err := s.load(ctx, deviceID)
	if err != nil {
		return false, err
	}

	added := true
	out := make([]uint64, 0, len(ids)+1)
	for _, id := range ids {
		if id == productID {
			added = false
			continue
		}
		out = append(out, id)
	}
	if added {
		out = append(out, productID)
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		logger.Error("[Favorites] marshal", zap.String("error", err.Error()))
		return false, err
	}
	if err := s.storageRepo.Set(ctx, deviceID, constant.RecordFavorites, string(encoded)); err != nil {
		logger.Error("[Favorites] persist", zap.String("error", err.Error()))
		return false, err
	}
	return added, nil
}

func (s *favoritesAppImpl) Contains(ctx context.Context, deviceID string, productID uint64) (bool, error) {
	ids, err := s.load(ctx, deviceID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *favoritesAppImpl) List(ctx context.Context, deviceID string) ([]uint64, error) {
	return s.load(ctx, deviceID)
}

func (s *favoritesAppImpl) load(ctx context.Context, deviceID string) ([]uint64, error) {
	raw, err := s.storageRepo.Get(ctx, deviceID, constant.RecordFavorites)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var ids []uint64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// malformed stored set is an empty set, not a failure
		return nil, nil
	}
	return ids, nil
}
