// Package publish exports registered pages as static HTML snapshots.
//
// A live deployment is not always wanted: documentation sites, previews,
// and design reviews only need the rendered markup. The publisher renders
// each page the same way the live server would, minus the session boot
// script, and writes the result to a Store.
//
// Two stores ship with the package: DiskStore writes snapshots under a
// local directory, S3Store puts them in a bucket. Implement Store for
// anything else.
//
// # Usage
//
// Publish a page set to a local directory:
//
//	store, err := publish.NewDiskStore("public", 0)
//	if err != nil {
//	    return err
//	}
//	pub := publish.New(store)
//	if err := pub.PublishSite(ctx, showcase.StaticPages()); err != nil {
//	    return err
//	}
//
// Route "/" becomes index.html, "/tasks" becomes tasks.html. Snapshots
// are inert: checkboxes render with their server-side state but no
// WebSocket bootstrap is emitted.
package publish
