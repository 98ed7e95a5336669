// Package timeusage implements the survey aggregation pipeline: load a
// time-use CSV extract, classify activity columns into three buckets,
// summarize minutes into hours per respondent, and average hours per
// demographic group.
//
// Stages run strictly in sequence (Loader, Classifier, Summarizer,
// Grouper); each stage fully consumes its input before the next begins
// and no stage mutates its input.
package timeusage
