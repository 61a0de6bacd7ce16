// Package s3 provides a Store implementation backed by Amazon S3.
//
// Reads stream the object body; writes stream through the S3 upload manager
// so large artifacts never have to be buffered in memory.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3blob.NewStore(s3.NewFromConfig(cfg), "my-bucket", "clustering/")
package s3
