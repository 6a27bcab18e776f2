package models

type NotificationSettings struct {
	RaceStart       bool `json:"raceStart"`
	FastestLap      bool `json:"fastestLap"`
	PositionChanges bool `json:"positionChanges"`
	WeatherUpdates  bool `json:"weatherUpdates"`
	Email           bool `json:"email"`
	Push            bool `json:"push"`
}

type PrivacySettings struct {
	ProfileVisible bool `json:"profileVisible"`
	ShareData      bool `json:"shareData"`
	Analytics      bool `json:"analytics"`
}

type Settings struct {
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
}

func DefaultSettings() Settings {
	return Settings{
		Notifications: NotificationSettings{
			RaceStart:       true,
			FastestLap:      true,
			PositionChanges: true,
			WeatherUpdates:  false,
			Email:           true,
			Push:            true,
		},
		Privacy: PrivacySettings{
			ProfileVisible: true,
			ShareData:      false,
			Analytics:      true,
		},
	}
}

// SettingsPatch toggles individual switches; absent keys keep their value.
type SettingsPatch struct {
	Notifications struct {
		RaceStart       *bool `json:"raceStart"`
		FastestLap      *bool `json:"fastestLap"`
		PositionChanges *bool `json:"positionChanges"`
		WeatherUpdates  *bool `json:"weatherUpdates"`
		Email           *bool `json:"email"`
		Push            *bool `json:"push"`
	} `json:"notifications"`
	Privacy struct {
		ProfileVisible *bool `json:"profileVisible"`
		ShareData      *bool `json:"shareData"`
		Analytics      *bool `json:"analytics"`
	} `json:"privacy"`
}

func (s Settings) Apply(p SettingsPatch) Settings {
	n, pr := p.Notifications, p.Privacy
	set(&s.Notifications.RaceStart, n.RaceStart)
	set(&s.Notifications.FastestLap, n.FastestLap)
	set(&s.Notifications.PositionChanges, n.PositionChanges)
	set(&s.Notifications.WeatherUpdates, n.WeatherUpdates)
	set(&s.Notifications.Email, n.Email)
	set(&s.Notifications.Push, n.Push)
	set(&s.Privacy.ProfileVisible, pr.ProfileVisible)
	set(&s.Privacy.ShareData, pr.ShareData)
	set(&s.Privacy.Analytics, pr.Analytics)
	return s
}

func set(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
