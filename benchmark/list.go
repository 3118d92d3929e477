package benchmark

import (
	"context"
	"fmt"

	"github.com/volkfox/tigris-speedtest/storage"
)

// RunList enumerates the bucket, printing key, size and per-object metadata.
// A non-empty query is forwarded to the service as a metadata predicate.
func RunList(ctx context.Context, store storage.ObjectStore, bucket, query string) error {
	fmt.Printf("\nListing contents of bucket '%s'...\n", bucket)

	objects, err := store.List(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransfer, err)
	}
	if len(objects) == 0 {
		fmt.Println("Bucket is empty")
		return nil
	}

	var totalSize int64
	fmt.Println("\nObjects:")
	for _, obj := range objects {
		sizeMB := float64(obj.Size) / (1024 * 1024)
		fmt.Printf("\n  %s (%.2f MB)\n", obj.Key, sizeMB)

		head, err := store.Stat(ctx, obj.Key)
		if err != nil {
			fmt.Printf("    Error getting metadata: %v\n", err)
		} else {
			fmt.Println("  Metadata:")
			fmt.Printf("    Last Modified: %s\n", head.LastModified)
			fmt.Printf("    ETag: %s\n", head.ETag)
			contentType := head.ContentType
			if contentType == "" {
				contentType = "not set"
			}
			fmt.Printf("    Content Type: %s\n", contentType)
			for k, v := range head.UserMetadata {
				fmt.Printf("    %s: %s\n", k, v)
			}
		}

		totalSize += obj.Size
	}

	fmt.Printf("\nTotal objects: %d\n", len(objects))
	fmt.Printf("Total size: %.2f GB\n", float64(totalSize)/(1024*1024*1024))
	return nil
}
