package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/tutoriz/ent"
	"github.com/abhisek/tutoriz/ent/snapshot"
)

// snapshotRepo stores schedule snapshots keyed by their position in the
// event log. Sequence, not wall-clock time, decides which snapshot is
// newest: a restore must line up with the log even if the clock moved.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	payload, err := encodeSnapshotData(snap.Data)
	if err != nil {
		return fmt.Errorf("encode snapshot data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return decodeSnapshot(row)
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Everything past the keep newest, by log position.
	stale, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Select(snapshot.FieldID).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	ids := make([]int, 0, len(stale))
	for _, row := range stale {
		ids = append(ids, row.ID)
	}
	if _, err := r.client.Snapshot.Delete().
		Where(snapshot.IDIn(ids...)).
		Exec(ctx); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// encodeSnapshotData flattens SnapshotData into the map form ent's JSON
// column stores.
func encodeSnapshotData(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// decodeSnapshot rebuilds a store Snapshot from its ent row.
func decodeSnapshot(row *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal stored data: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}
