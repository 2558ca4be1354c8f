package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	mb         = 1000000
	maxLogSize = 2.5 * mb
	maxLogs    = 2
)

// rollingFileWriter appends to <dir>/<name>.log. Once that file passes maxLogSize it is archived as
// <name>-1.log, older archives shift up by one, and anything past maxLogs is removed.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string
	MaxSize       int64
	MaxLogs       int
}

func NewRollingFileWriter(fileDir string, fileName string) rollingFileWriter {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		panic(err)
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		MaxSize:       maxLogSize,
		MaxLogs:       maxLogs,
	}
}

func fileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func (w rollingFileWriter) mainLog() string {
	return filepath.Join(w.FileDirectory, w.FileName+".log")
}

func (w rollingFileWriter) indexedLog(index int64) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", w.FileName, index))
}

func (w rollingFileWriter) Write(b []byte) (n int, err error) {
	stats, err := os.Stat(w.mainLog())
	if err == nil && stats.Size() >= w.MaxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	mainLogFile, err := os.OpenFile(w.mainLog(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

// archives returns the indexes of every archived log, oldest (highest index) first
func (w rollingFileWriter) archives() ([]int64, error) {
	matches, err := fs.Glob(os.DirFS(w.FileDirectory), w.FileName+"-*.log")
	if err != nil {
		return nil, err
	}

	indexes := lo.FilterMap(matches, func(name string, _ int) (int64, bool) {
		index, ok := getLogIndex(w.FileName, name)
		return index, ok
	})
	slices.Sort(indexes)
	slices.Reverse(indexes)

	return indexes, nil
}

func (w rollingFileWriter) rotate() error {
	indexes, err := w.archives()
	if err != nil {
		return err
	}

	// highest first, so a rename never lands on a file that has not moved yet
	for _, index := range indexes {
		if int(index)+1 > w.MaxLogs-1 {
			if err := os.Remove(w.indexedLog(index)); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(w.indexedLog(index), w.indexedLog(index+1)); err != nil {
			return err
		}
	}

	if w.MaxLogs <= 1 {
		return os.Remove(w.mainLog())
	}

	return os.Rename(w.mainLog(), w.indexedLog(1))
}

func getLogIndex(baseFileName string, filePath string) (int64, bool) {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, ok := strings.CutPrefix(fileName, baseFileName+"-")
	if !ok {
		return 0, false
	}

	index, err := strconv.ParseInt(indexStr, 10, 32)
	return index, err == nil && index > 0
}
