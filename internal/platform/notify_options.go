package platform

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender where the platform shows one.
	AppName string
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// TimeoutMs is a display hint; zero leaves the choice to the platform.
	TimeoutMs int32
}

func (o Options) appName() string {
	if o.AppName == "" {
		return "LT Paint"
	}
	return o.AppName
}
