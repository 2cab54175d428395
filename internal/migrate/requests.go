package migrate

import "crate/internal/library"

// ArtistRequest prepares an artist row for planning.
func ArtistRequest(a library.Artist) Request {
	slugs := library.ArtistFolderAlternatives(a)
	return Request{
		EntityID: a.ID,
		Name:     a.Name,
		Target:   library.ArtistFolder(a),
		Accepted: slugs,
	}
}

// ReleaseRequest prepares a release row for planning. The identifier
// suffix lets the planner recognize legacy folders whose title spelling
// drifted but whose key survived.
func ReleaseRequest(r library.Release) Request {
	return Request{
		EntityID: r.ID,
		Name:     r.Title,
		Target:   library.ReleaseFolder(r),
		Accepted: library.ReleaseFolderAlternatives(r),
		Key:      library.ReleaseKey(r),
	}
}
