package domain

import "time"

type Schedule struct {
	ID           int32     `json:"id"`
	ClubID       int32     `json:"club_id"`
	Content      string    `json:"content"`
	ScheduleDate time.Time `json:"schedule_date"`
}

type Notice struct {
	ID        int32  `json:"id"`
	ClubID    int32  `json:"club_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedOn string `json:"created_on"`
}

type Artwork struct {
	ID         int32  `json:"id"`
	ClubID     int32  `json:"club_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ImgPath    string `json:"img_path"`    // public locator
	StorageKey string `json:"storage_key"` // file name inside the content store
	CreatedOn  string `json:"created_on"`
}
