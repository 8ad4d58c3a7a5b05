// Package githelper drives a git working copy through a single Repository
// handle.
//
// Every operation blocks until git finishes and returns either its result or
// the error git produced, unchanged. Run operations in goroutines for
// concurrency; the working copy itself is not locked, so concurrent mutating
// calls on one Repository race at the git level.
//
//	repo, err := githelper.Clone(ctx, "/tmp/x", "https://example.com/repo.git", "main")
//	if err != nil {
//		return err
//	}
//	status, err := repo.Status(ctx)
package githelper
