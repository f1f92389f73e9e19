package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paulmach/orb/geojson"
)

type Db struct {
	pool *pgxpool.Pool
}

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "diwise"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

func New(ctx context.Context, cfg Config) (Db, error) {
	p, err := connect(ctx, cfg)
	if err != nil {
		return Db{}, err
	}

	err = initialize(ctx, p)
	if err != nil {
		return Db{}, err
	}

	return Db{
		pool: p,
	}, nil
}

func (db Db) Close() {
	db.pool.Close()
}

func initialize(ctx context.Context, pool *pgxpool.Pool) error {
	log := logging.GetFromContext(ctx)

	ddl := `
	CREATE TABLE IF NOT EXISTS features (
		node_id     BIGSERIAL,
		collection  TEXT  NOT NULL,
		feature_id  TEXT  NOT NULL,
		geom_type   TEXT  NULL,
		location    POINT NULL,
		data        JSONB NOT NULL,
		tenant      TEXT  NOT NULL,
		created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		modified_on timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (node_id)
	);

	CREATE UNIQUE INDEX IF NOT EXISTS feature_id_idx ON features (collection, feature_id);
	CREATE INDEX IF NOT EXISTS feature_tenant_idx ON features (tenant);

	CREATE INDEX IF NOT EXISTS feature_location_idx ON features USING GIST(location);
	`

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Error("could not begin transaction", "err", err.Error())
		return err
	}

	_, err = tx.Exec(ctx, ddl)
	if err != nil {
		log.Error("could not execute ddl statement", "err", err.Error())
		tx.Rollback(ctx)
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		log.Error("could not commit transaction", "err", err.Error())
		return err
	}

	return nil
}

func connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	conn, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = conn.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return conn, err
}

func (db Db) AddFeature(ctx context.Context, collectionID string, f *geojson.Feature) error {
	log := logging.GetFromContext(ctx)

	record, err := newFeatureRecord(collectionID, f)
	if err != nil {
		log.Error("could not create feature record", "err", err.Error())
		return err
	}

	insert := `INSERT INTO features(collection, feature_id, geom_type, location, data, tenant)
			   VALUES (@collection, @feature_id, @geom_type, point(@lon,@lat), @data, @tenant);`

	_, err = db.pool.Exec(ctx, insert, record.namedArgs())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			log.Debug("insert statement failed", "err", pgErr.Error(), "code", pgErr.Code, "message", pgErr.Message)
		}

		if isDuplicateKeyErr(err) {
			log.Debug("error is duplicate key")
			return ErrAlreadyExists
		}

		log.Error("could not execute statement", "err", err.Error())
		return err
	}

	return nil
}

func (db Db) SaveFeature(ctx context.Context, collectionID string, f *geojson.Feature) error {
	log := logging.GetFromContext(ctx)

	record, err := newFeatureRecord(collectionID, f)
	if err != nil {
		log.Error("could not create feature record", "err", err.Error())
		return err
	}

	upsert := `INSERT INTO features(collection, feature_id, geom_type, location, data, tenant)
			   VALUES (@collection, @feature_id, @geom_type, point(@lon,@lat), @data, @tenant)
			   ON CONFLICT (collection, feature_id) DO UPDATE
			   SET geom_type=EXCLUDED.geom_type,
			       location=EXCLUDED.location,
			       data=EXCLUDED.data,
			       tenant=EXCLUDED.tenant,
			       modified_on=CURRENT_TIMESTAMP;`

	_, err = db.pool.Exec(ctx, upsert, record.namedArgs())
	if err != nil {
		log.Error("could not execute statement", "err", err.Error())
		return err
	}

	return nil
}

func (db Db) DeleteFeature(ctx context.Context, collectionID, featureID string) error {
	log := logging.GetFromContext(ctx)

	delete := `DELETE FROM features WHERE collection=@collection AND feature_id=@feature_id;`

	tag, err := db.pool.Exec(ctx, delete, pgx.NamedArgs{
		"collection": collectionID,
		"feature_id": featureID,
	})
	if err != nil {
		log.Error("could not execute statement", "err", err.Error())
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotExist
	}

	return nil
}

func isDuplicateKeyErr(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // duplicate key value violates unique constraint
			return true
		}
	}
	return false
}
