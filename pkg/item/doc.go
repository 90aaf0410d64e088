// Package item defines the Item record and a Repository that keeps items as
// documents of one OpenSearch index.
//
// The repository offers four operations, all addressed by the item ID:
//
//   - Insert     – create or replace the document with the full record.
//   - GetByID    – point lookup.
//   - UpdateByID – overwrite the document with the full record and return the
//     stored state after the update.
//   - DeleteByID – remove the document.
//
// Failures are returned, never swallowed. Use errors.Is to tell them apart:
//
//	it, err := repo.GetByID(ctx, "MLA608001111")
//	switch {
//	case errors.Is(err, item.ErrNotFound):
//	    // no such document
//	case errors.Is(err, item.ErrTransport):
//	    // cluster unreachable
//	case errors.Is(err, item.ErrRejected):
//	    var se *item.StoreError
//	    errors.As(err, &se) // status, type and reason from the cluster
//	}
//
// Insert hands back the in-memory item even when the write fails, so callers
// that only want best-effort indexing can keep going with it.
package item
