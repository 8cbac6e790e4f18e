package config

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/barrabusiness/lead_management_system/backend/store"
)

// DocumentBackend picks where the persisted document lives. With MONGOURI
// set the document is kept as a single MongoDB record; otherwise it stays
// under one Redis key. The returned cleanup closes the Mongo connection.
func DocumentBackend(redisClient *redis.Client) (store.Backend, func(), error) {
	if os.Getenv("MONGOURI") == "" {
		log.Println("MONGOURI not set, storing the document in Redis")
		return store.NewRedisBackend(redisClient), func() {}, nil
	}

	client, err := ConnectDB()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { CloseDBConnection(client) }
	return store.NewMongoBackend(DocumentCollection(client)), cleanup, nil
}
