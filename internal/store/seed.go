package store

import "time"

// Seeded returns a store populated with the demo dataset: three dog
// accounts, their posts, and the comment threads between them.
func Seeded() *Store {
	s := New()
	for _, u := range seedUsers() {
		_ = s.InsertUser(u)
	}
	// Insert oldest array entry first so the storage order stays
	// newest-inserted-first.
	posts := seedPosts()
	for i := len(posts) - 1; i >= 0; i-- {
		_ = s.InsertPost(posts[i])
	}
	for _, c := range seedComments() {
		_ = s.InsertComment(c)
	}
	return s
}

func seedUsers() []User {
	return []User{
		{
			ID:        "1",
			Username:  "golden_max",
			Email:     "max@example.com",
			FullName:  "Max the Golden",
			AvatarURL: "https://images.pexels.com/photos/2253275/pexels-photo-2253275.jpeg",
			Bio:       "Golden Retriever living my best life. I love beaches, tennis balls, and belly rubs!",
			Followers: []string{"2", "3"},
			Following: []string{"2"},
		},
		{
			ID:        "2",
			Username:  "corgi_cooper",
			Email:     "cooper@example.com",
			FullName:  "Cooper the Corgi",
			AvatarURL: "https://images.pexels.com/photos/58997/pexels-photo-58997.jpeg",
			Bio:       "Professional corgi model. Tiny legs, big personality. Treats, please!",
			Followers: []string{"1", "3"},
			Following: []string{"1", "3"},
		},
		{
			ID:        "3",
			Username:  "husky_luna",
			Email:     "luna@example.com",
			FullName:  "Luna the Husky",
			AvatarURL: "https://images.pexels.com/photos/3726313/pexels-photo-3726313.jpeg",
			Bio:       "Husky queen. Snow lover. Professional howler. Will sing for treats.",
			Followers: []string{"2"},
			Following: []string{"1", "2"},
		},
	}
}

func seedPosts() []Post {
	return []Post{
		{
			ID:        "1",
			UserID:    "1",
			ImageURL:  "https://images.pexels.com/photos/1490908/pexels-photo-1490908.jpeg",
			Caption:   "Beach day is the best day!",
			Likes:     []string{"2", "3"},
			CreatedAt: seedTime(15, 10, 30),
		},
		{
			ID:        "2",
			UserID:    "1",
			ImageURL:  "https://images.pexels.com/photos/1564506/pexels-photo-1564506.jpeg",
			Caption:   "Just hanging out in the garden",
			Likes:     []string{"2"},
			CreatedAt: seedTime(14, 15, 45),
		},
		{
			ID:        "3",
			UserID:    "1",
			ImageURL:  "https://images.pexels.com/photos/3397939/pexels-photo-3397939.jpeg",
			Caption:   "Caught the frisbee like a pro!",
			Likes:     []string{"3"},
			CreatedAt: seedTime(12, 12, 15),
		},
		{
			ID:        "4",
			UserID:    "2",
			ImageURL:  "https://images.pexels.com/photos/1543793/pexels-photo-1543793.jpeg",
			Caption:   "Short legs don't stop me!",
			Likes:     []string{"1"},
			CreatedAt: seedTime(15, 9, 20),
		},
		{
			ID:        "5",
			UserID:    "2",
			ImageURL:  "https://images.pexels.com/photos/4587998/pexels-photo-4587998.jpeg",
			Caption:   "My favorite toy",
			Likes:     []string{"1", "3"},
			CreatedAt: seedTime(13, 14, 30),
		},
		{
			ID:        "6",
			UserID:    "3",
			ImageURL:  "https://images.pexels.com/photos/2853422/pexels-photo-2853422.jpeg",
			Caption:   "Snow day is my kind of day!",
			Likes:     []string{"1", "2"},
			CreatedAt: seedTime(14, 11, 10),
		},
		{
			ID:        "7",
			UserID:    "3",
			ImageURL:  "https://images.pexels.com/photos/4587971/pexels-photo-4587971.jpeg",
			Caption:   "Ready for my close-up!",
			Likes:     []string{"2"},
			CreatedAt: seedTime(12, 16, 40),
		},
	}
}

func seedComments() []Comment {
	return []Comment{
		{ID: "1", PostID: "1", UserID: "2", Text: "Looking good, Max!", CreatedAt: seedTime(15, 10, 45)},
		{ID: "2", PostID: "1", UserID: "3", Text: "I wish I could join you at the beach!", CreatedAt: seedTime(15, 11, 5)},
		{ID: "3", PostID: "3", UserID: "3", Text: "Nice catch!", CreatedAt: seedTime(12, 12, 30)},
		{ID: "4", PostID: "5", UserID: "1", Text: "Aww, so cute! What toy is that?", CreatedAt: seedTime(13, 15, 0)},
		{ID: "5", PostID: "6", UserID: "1", Text: "You look right at home in the snow!", CreatedAt: seedTime(14, 11, 45)},
	}
}

func seedTime(day, hour, minute int) time.Time {
	return time.Date(2024, time.June, day, hour, minute, 0, 0, time.UTC)
}
