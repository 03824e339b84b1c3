package main

import (
	"io"
	"os"

	"github.com/inhies/go-bytesize"
	"github.com/sirupsen/logrus"
)

type fileReader struct {
	fileName string

	filePtr *os.File
	Size    bytesize.ByteSize

	bytesRead int64
	log       logrus.FieldLogger
}

func ReadFromFile(fileName string, logger logrus.FieldLogger) (*fileReader, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, &IOError{Op: "open", Path: fileName, Err: err}
	}
	fi, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, &IOError{Op: "stat", Path: fileName, Err: err}
	}
	return &fileReader{
		fileName: fileName,
		filePtr:  file,
		Size:     bytesize.New(float64(fi.Size())),
		log:      logger.WithField("file", fileName),
	}, nil
}

// Read satisfies io.Reader
// It's necessary to encounter both EOF and non-zero read bytes at the same time
// when file has been read completely
func (reader *fileReader) Read(buffer []byte) (read int, err error) {
	read, err = reader.filePtr.Read(buffer)
	if read != 0 {
		reader.bytesRead += int64(read)
		reader.log.Debugf("%.2f%% complete: Read %s", reader.progress(), bytesize.New(float64(reader.bytesRead)))
	}
	if err == nil && reader.bytesRead == int64(reader.Size) {
		err = io.EOF
	}
	if err != nil && err != io.EOF {
		err = &IOError{Op: "read", Path: reader.fileName, Err: err}
	}
	return
}

func (reader *fileReader) progress() float64 {
	if reader.Size == 0 {
		return 100
	}
	return float64(reader.bytesRead*100) / float64(reader.Size)
}

func (reader *fileReader) Close() error {
	return reader.filePtr.Close()
}
