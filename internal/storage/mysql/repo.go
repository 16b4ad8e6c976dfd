package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/go-sql-driver/mysql"

	"arame_concierge/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// isDuplicate reports a MySQL unique-key violation (error 1062).
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// ---- guests ----

func (r *Repo) UpsertGuest(ctx context.Context, g domain.Guest) error {
	tags, _ := json.Marshal(g.ProfileTags)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var checkIn, checkOut any
	if g.CheckIn != nil {
		checkIn = *g.CheckIn
	}
	if g.CheckOut != nil {
		checkOut = *g.CheckOut
	}
	if _, err := tx.ExecContext(ctx, upsertGuestSQL,
		g.ID, g.Name, g.RoomNumber, string(tags), checkIn, checkOut, g.Active,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, deactivateRoomSQL, g.RoomNumber, g.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *Repo) GetGuest(ctx context.Context, id string) (domain.Guest, error) {
	row := r.db.QueryRowContext(ctx, getGuestSQL, id)

	var g domain.Guest
	var tagsJSON []byte
	var checkIn, checkOut sql.NullTime
	if err := row.Scan(&g.ID, &g.Name, &g.RoomNumber, &tagsJSON, &checkIn, &checkOut, &g.Active); err != nil {
		if err == sql.ErrNoRows {
			return domain.Guest{}, domain.ErrNotFound
		}
		return domain.Guest{}, err
	}
	_ = json.Unmarshal(tagsJSON, &g.ProfileTags)
	if checkIn.Valid {
		t := checkIn.Time
		g.CheckIn = &t
	}
	if checkOut.Valid {
		t := checkOut.Time
		g.CheckOut = &t
	}
	return g, nil
}

// ---- room service orders ----

func (r *Repo) CreateOrder(ctx context.Context, o domain.RoomServiceOrder) (int64, error) {
	items, _ := json.Marshal(o.Items)
	res, err := r.db.ExecContext(ctx, insertOrderSQL,
		o.FlowID, o.GuestID, o.RoomNumber, string(items), o.Notes, o.Total, string(o.Status), o.CreatedAt,
	)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ErrFlowConflict
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) OrderExists(ctx context.Context, flowID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, orderExistsSQL, flowID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repo) GetOrderByFlow(ctx context.Context, flowID string) (domain.RoomServiceOrder, error) {
	row := r.db.QueryRowContext(ctx, getOrderByFlowSQL, flowID)

	var o domain.RoomServiceOrder
	var itemsJSON []byte
	var status string
	if err := row.Scan(&o.ID, &o.FlowID, &o.GuestID, &o.RoomNumber, &itemsJSON, &o.Notes, &o.Total, &status, &o.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.RoomServiceOrder{}, domain.ErrNotFound
		}
		return domain.RoomServiceOrder{}, err
	}
	_ = json.Unmarshal(itemsJSON, &o.Items)
	o.Status = domain.OrderStatus(status)
	return o, nil
}

// ---- transport requests ----

func (r *Repo) CreateRequest(ctx context.Context, t domain.TransportRequest) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertTransportSQL,
		t.FlowID, t.GuestID, t.PickupAt, t.Destination, t.VehicleType, t.Passengers, string(t.Status), t.CreatedAt,
	)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ErrFlowConflict
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) RequestExists(ctx context.Context, flowID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, transportExistsSQL, flowID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
