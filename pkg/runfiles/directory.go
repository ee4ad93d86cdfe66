package runfiles

// directoryResolver joins every logical path onto one base directory. It is
// pure string composition: whether the result exists on disk is the
// caller's business.
type directoryResolver struct {
	base string
}

func (d *directoryResolver) name() string {
	return "directory"
}

func (d *directoryResolver) resolve(path string) (string, bool) {
	return d.base + "/" + path, true
}

func (d *directoryResolver) env() []string {
	return []string{envDir + "=" + d.base}
}
