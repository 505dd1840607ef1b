package models

type RankRequest struct {
	ResumeText         string `json:"resumeText"`
	JobDescriptionText string `json:"jobDescriptionText"`
}

type SuggestionsRequest struct {
	ResumeContent  string `json:"resumeContent"`
	JobDescription string `json:"jobDescription"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
