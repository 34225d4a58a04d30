// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the catalog
// import and export need, so tests can use the testify mock in core/storage/mocks.
// GetJSON and PutJSON move JSON documents in and out of a bucket.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	var items []models.Item
//	err = storage.GetJSON(ctx, client, cfg.Storage.Bucket, "catalog/items.json", &items)
package storage
