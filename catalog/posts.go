package catalog

// Default returns the catalog of posts published on the Gingr blog. Each call
// builds a fresh Catalog.
func Default() *Catalog {
	return MustNew(defaultPosts()...)
}

func defaultPosts() []Post {
	return []Post{
		{
			ID:       1,
			Title:    "Building Meaningful Connections in the Digital Age",
			Excerpt:  "Discover how college students are leveraging technology to create lasting friendships and professional networks in today's digital world.",
			Image:    "/meaninful.png",
			Date:     "March 15, 2024",
			ReadTime: "5 min read",
			Category: "Community",
			Content: []string{
				"In today's fast-paced digital world, building meaningful connections has become both more accessible and more challenging than ever before. College students, in particular, face unique opportunities and obstacles when it comes to forming lasting relationships in the digital age.",
				"Technology has revolutionized the way we connect with others. While social media platforms have made it easier to stay in touch, they often lack the depth and authenticity that genuine relationships require. This is where Gingr steps in, offering a unique approach to digital connections that prioritizes meaningful interactions over superficial engagements.",
			},
		},
		{
			ID:       2,
			Title:    "Privacy First: The Future of Social Networking",
			Excerpt:  "Why privacy-focused platforms are becoming increasingly important for students and how Gingr is leading the charge.",
			Image:    "/secured.png",
			Date:     "March 12, 2024",
			ReadTime: "4 min read",
			Category: "Privacy & Security",
			Content: []string{
				"In an era where data breaches and privacy concerns are making headlines, the importance of privacy-focused social networking platforms cannot be overstated. Students, in particular, are becoming increasingly aware of the need to protect their digital footprint while staying connected.",
			},
		},
		{
			ID:       3,
			Title:    "Finding Your Tribe: Interest-Based Communities",
			Excerpt:  "How to connect with like-minded students and build communities around shared interests and academic goals.",
			Image:    "/interest_based.png",
			Date:     "March 10, 2024",
			ReadTime: "6 min read",
			Category: "Features",
			Content: []string{
				"One of the most exciting aspects of college life is discovering and connecting with people who share your interests and passions. Gingr's interest-based communities feature makes this process easier and more meaningful than ever before.",
			},
		},
		{
			ID:       4,
			Title:    "The Power of Anonymous Expression",
			Excerpt:  "Understanding the benefits of anonymous communication in fostering open discussions and authentic connections.",
			Image:    "/anym.png",
			Date:     "March 8, 2024",
			ReadTime: "4 min read",
			Category: "Privacy & Security",
			Content: []string{
				"Anonymity in online communication often gets a bad rap, but when implemented thoughtfully, it can be a powerful tool for fostering authentic connections and meaningful discussions. Gingr's anonymous chatting feature is designed to create safe spaces for honest expression while maintaining community standards.",
			},
		},
	}
}
