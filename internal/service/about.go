package service

import "messageboard/internal/models"

var aboutParagraphs = []string{
	"Hi my name is Angelina Wu.",
	" I am from San Jose, California and I go to NYU. I study Computer Science and Economics and am currently a sophomore. I like drawing and painting in my free time, recently getting into pottery and crocheting. Art helps me relax when school gets stressful. It feels different from coding and lets me be more creative.",
	"I have done a bunch of random partime different jobs and projects that helped me learn how to work with people. I have skills in teamwork and organization. I like being part of clubs and meeting new people. I am in groups like GDG, MUn and SWE in school  and I enjoy being involved. I have a cat and I like spending time with her. I also like working on side projects. I want to travel to places like Japan and Korea in the future. I am always trying new things and learning as I go.",
	"I like rock climbing and am interested in new experiences.",
	"Nice to meet you .",
}

// About returns the static profile. Each call gets its own paragraph slice.
func About() models.About {
	paragraphs := make([]string, len(aboutParagraphs))
	copy(paragraphs, aboutParagraphs)
	return models.About{
		Title:      "About Angelina Wu",
		ImageURL:   "/public/angelina.jpg",
		Paragraphs: paragraphs,
	}
}
