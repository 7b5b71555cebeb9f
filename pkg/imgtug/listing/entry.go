package listing

// ParentName is the display name of the synthetic entry that leads one
// directory up.
const ParentName = "../"

// Entry is one navigable item of a directory listing.
type Entry struct {
	Name     string
	IsDir    bool
	IsImage  bool
	IsParent bool
}

// ParentEntry returns the synthetic "../" entry.
func ParentEntry() Entry {
	return Entry{Name: ParentName, IsDir: true, IsParent: true}
}

// DisplayName is the name shown in the file tree; directories get a
// trailing slash.
func (e Entry) DisplayName() string {
	if e.IsDir && !e.IsParent {
		return e.Name + "/"
	}
	return e.Name
}
