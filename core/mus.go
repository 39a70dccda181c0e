package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the stored domain types. Written by hand against
// mus-go primitives; field order is part of the storage format and must
// not change without migrating existing databases.
var (
	IDMUS     = idMUS{}
	LessonMUS = lessonMUS{}
	CourseMUS = courseMUS{}
	ChunkMUS  = chunkMUS{}

	vectorMUS  = ord.NewSliceSer[float32](raw.Float32)
	lessonsMUS = ord.NewSliceSer[Lesson](LessonMUS)
)

type idMUS struct{}

func (s idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (s idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (s idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (s idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type lessonMUS struct{}

func (s lessonMUS) Marshal(l Lesson, bs []byte) (n int) {
	n = varint.Int.Marshal(l.Number, bs)
	n += ord.String.Marshal(l.Title, bs[n:])
	n += ord.String.Marshal(l.Link, bs[n:])
	return
}

func (s lessonMUS) Unmarshal(bs []byte) (l Lesson, n int, err error) {
	var n1 int
	l.Number, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	l.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	l.Link, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s lessonMUS) Size(l Lesson) (size int) {
	size = varint.Int.Size(l.Number)
	size += ord.String.Size(l.Title)
	size += ord.String.Size(l.Link)
	return
}

func (s lessonMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

type courseMUS struct{}

func (s courseMUS) Marshal(c Course, bs []byte) (n int) {
	n = ord.String.Marshal(c.Title, bs)
	n += ord.String.Marshal(c.Link, bs[n:])
	n += ord.String.Marshal(c.Instructor, bs[n:])
	n += lessonsMUS.Marshal(c.Lessons, bs[n:])
	n += vectorMUS.Marshal(c.Vector, bs[n:])
	return
}

func (s courseMUS) Unmarshal(bs []byte) (c Course, n int, err error) {
	var n1 int
	c.Title, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	c.Link, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Instructor, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Lessons, n1, err = lessonsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s courseMUS) Size(c Course) (size int) {
	size = ord.String.Size(c.Title)
	size += ord.String.Size(c.Link)
	size += ord.String.Size(c.Instructor)
	size += lessonsMUS.Size(c.Lessons)
	size += vectorMUS.Size(c.Vector)
	return
}

func (s courseMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = lessonsMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return
}

type chunkMUS struct{}

func (s chunkMUS) Marshal(c Chunk, bs []byte) (n int) {
	n = ord.String.Marshal(c.Content, bs)
	n += ord.String.Marshal(c.CourseTitle, bs[n:])
	n += varint.Int.Marshal(c.LessonNumber, bs[n:])
	n += varint.Int.Marshal(c.ChunkIndex, bs[n:])
	n += vectorMUS.Marshal(c.Vector, bs[n:])
	return
}

func (s chunkMUS) Unmarshal(bs []byte) (c Chunk, n int, err error) {
	var n1 int
	c.Content, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	c.CourseTitle, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.LessonNumber, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.ChunkIndex, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s chunkMUS) Size(c Chunk) (size int) {
	size = ord.String.Size(c.Content)
	size += ord.String.Size(c.CourseTitle)
	size += varint.Int.Size(c.LessonNumber)
	size += varint.Int.Size(c.ChunkIndex)
	size += vectorMUS.Size(c.Vector)
	return
}

func (s chunkMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		n1, err = varint.Int.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return
}
