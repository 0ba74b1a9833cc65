// Package metrics exposes prometheus collectors for decoding and ingestion.
package metrics

const namespace = "blkdelta"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
